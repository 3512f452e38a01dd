package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// Mode selects how a field is validated: RuleMode or CompareMode.
type Mode interface {
	mode() string
}

// RuleMode validates the field's text against an ordered rule set.
// The first failing rule's message becomes the field's error.
type RuleMode struct {
	Rules []validator.CheckRule
}

func (RuleMode) mode() string { return "rules" }

// CompareMode validates the field by exact string equality with Target's text.
// Target is a non-owning, read-only reference.
type CompareMode struct {
	Target Texter
	Error  string
}

func (CompareMode) mode() string { return "compare" }

// ModeName returns "rules", "compare" or "none".
func ModeName(m Mode) string {
	if m == nil {
		return "none"
	}
	return m.mode()
}

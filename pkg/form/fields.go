package form

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Fields is an ordered set of fields in tab order. Nil members are skipped.
type Fields []*Field

// AllValid reports whether every member is valid. It has no side effects.
func (fs Fields) AllValid() bool {
	for _, f := range fs {
		if f != nil && !f.Valid() {
			return false
		}
	}
	return true
}

// ValidateAll validates every member once, in order. A failing member never
// stops the ones after it; each member's callback fires as it is validated.
func (fs Fields) ValidateAll() {
	for _, f := range fs {
		if f != nil {
			f.Validate()
		}
	}
}

// Setup applies the same mode and callback to every member. All members are
// attempted; failures are joined.
func (fs Fields) Setup(m Mode, onChange func()) error {
	var errs []error
	for _, f := range fs {
		if f == nil {
			continue
		}
		if err := f.Setup(m, onChange); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (fs Fields) SetupRules(rules []validator.CheckRule, onChange func()) error {
	return fs.Setup(RuleMode{Rules: rules}, onChange)
}

func (fs Fields) SetupCompare(target Texter, msg string, onChange func()) error {
	return fs.Setup(CompareMode{Target: target, Error: msg}, onChange)
}

// SetValidationDisabled toggles validation on every member.
func (fs Fields) SetValidationDisabled(disabled bool) {
	for _, f := range fs {
		if f != nil {
			f.SetValidationDisabled(disabled)
		}
	}
}

// Next returns the field after current in tab order, or nil when current is
// the last field or not a member.
func (fs Fields) Next(current *Field) *Field {
	for i, f := range fs {
		if f != current || f == nil {
			continue
		}
		for _, next := range fs[i+1:] {
			if next != nil {
				return next
			}
		}
		return nil
	}
	return nil
}

// Prev returns the field before current in tab order, or nil.
func (fs Fields) Prev(current *Field) *Field {
	for i, f := range fs {
		if f != current || f == nil {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if fs[j] != nil {
				return fs[j]
			}
		}
		return nil
	}
	return nil
}

// MarkLast sets the "done" return key on the last member and the default one
// on every other member.
func (fs Fields) MarkLast() {
	last := -1
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i] != nil {
			last = i
			break
		}
	}
	for i, f := range fs {
		if f != nil {
			f.SetLastOnScreen(i == last)
		}
	}
}

// Invalid returns the members that are currently invalid, in order.
func (fs Fields) Invalid() Fields {
	var out Fields
	for _, f := range fs {
		if f != nil && !f.Valid() {
			out = append(out, f)
		}
	}
	return out
}

// Errors reports every invalid member as a ValidationError keyed by title.
func (fs Fields) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range fs.Invalid() {
		errs.Add(validator.ValidationError{
			Field:   f.Title(),
			Message: f.Message(),
		})
	}
	return errs
}

package formspec

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form is a built schema: wired fields addressable by name.
type Form struct {
	name   string
	fields form.Fields
	names  []string
	byName map[string]*form.Field
	inputs map[string]form.Input
}

func (f *Form) Name() string { return f.name }

// Fields returns the fields in declared (tab) order.
func (f *Form) Fields() form.Fields { return f.fields }

// Field returns the field declared as name, or nil.
func (f *Form) Field(name string) *form.Field { return f.byName[name] }

// Input returns the input backing the field declared as name, or nil.
func (f *Form) Input(name string) form.Input { return f.inputs[name] }

// Names returns field names in declared order.
func (f *Form) Names() []string {
	return slices.Clone(f.names)
}

func (f *Form) Valid() bool { return f.fields.AllValid() }

func (f *Form) ValidateAll() { f.fields.ValidateAll() }

func (f *Form) Errors() validator.ValidationErrors { return f.fields.Errors() }

func (f *Form) SetValidationDisabled(disabled bool) { f.fields.SetValidationDisabled(disabled) }

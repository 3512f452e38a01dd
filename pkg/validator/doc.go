// Package validator provides composable string validation rules for form fields.
//
// A Rule pairs a boolean Check with translation-friendly error metadata. Rules
// are usually not built directly: the catalog exposes CheckRule values, which
// are unbound rules receiving the field's display name and its current value at
// check time. Plain rules such as Required or Email are CheckRules as-is;
// parameterised ones such as MinLen(8) return a CheckRule.
//
// # Check groups
//
// FieldCheck binds a display name and a live value reference to an ordered rule
// list. CheckGroup aggregates field checks. Check returns the first failing
// rule's ValidationError (or nil), which is what a form field shows under its
// input. CheckAll collects every failure as ValidationErrors.
//
//	check := validator.FieldCheck{
//	    Name:  "Email",
//	    Value: input.Text,
//	    Rules: []validator.CheckRule{validator.Required, validator.Email},
//	}
//	if err := validator.NewCheckGroup(check).Check(); err != nil {
//	    hint := validator.Message(err)
//	}
//
// Apply and First evaluate already bound Rules, aggregating all failures or
// stopping at the first one.
//
// # Registry
//
// Rules can be referenced by name from configuration. ParseRule understands
// expressions like "required", "min_len:8", "username:3,20", "one_of:a,b" and
// "matches:^[a-z]+$". ParseRules splits a semicolon separated list. Register
// adds custom factories.
//
// # Error Handling
//
// ValidationError and ValidationErrors implement error, so errors.As can
// recover field-level details. Registry failures wrap ErrUnknownRule or
// ErrInvalidRuleParams.
package validator

// Package form coordinates validation of text fields on a form screen.
//
// A Field reads its text from an Input owned by the UI layer and validates it
// in one of two modes:
//
//   - RuleMode checks the text against an ordered list of validator.CheckRule
//     values and records the first failing rule's message.
//   - CompareMode requires the text to equal another field's text, for
//     example a password confirmation, and records a fixed message otherwise.
//
// The UI decides when to validate, typically from the text-changed
// notification (OnTextChanged). Every validity assignment renders the field's
// Presenter and then invokes the change callback, even when validity did not
// change. Disabling validation forces the field valid and makes Validate a
// no-op until it is enabled again.
//
// # Usage
//
//	email := form.New("Email", emailInput, form.AsEmail())
//	password := form.New("Password", passwordInput, form.AsPassword())
//	confirm := form.New("Confirm password", confirmInput, form.AsPassword(), form.LastOnScreen())
//
//	refresh := func() { submit.SetEnabled(fields.AllValid()) }
//	_ = email.SetupRules([]validator.CheckRule{validator.Required, validator.Email}, refresh)
//	_ = password.SetupRules([]validator.CheckRule{validator.Required, validator.MinLen(8)}, refresh)
//	_ = confirm.SetupCompare(password, "Passwords do not match", refresh)
//
//	fields := form.Fields{email, password, confirm}
//	fields.ValidateAll()
//
// Fields applies batch operations over a tab-ordered slice: AllValid,
// ValidateAll and shared Setup.
//
// # Error Handling
//
// A failed validation is not a Go error: it is Valid() == false plus a
// message from Message. Setup returns errors only for misconfiguration, such
// as switching an already configured field to the other mode (ErrModeConflict).
package form

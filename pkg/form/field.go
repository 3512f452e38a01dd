package form

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Field is a labeled text input with validation.
//
// A field validates in at most one mode: against a rule set or by equality
// with another field's text. Validity is recomputed only when Validate (or
// OnTextChanged) is called. Every validity assignment, including one that
// leaves the value unchanged, renders the presenter and then calls the change
// callback.
//
// Field is not safe for concurrent use; confine it to the UI event loop.
type Field struct {
	input       Input
	look        Appearance
	customError string

	mode      Mode
	checks    validator.CheckGroup
	valid     bool
	lastError string
	disabled  bool
	onChange  func()

	presenter Presenter
	delegate  any
	logger    *slog.Logger
}

// New creates a field titled title reading its text from input.
// An empty title falls back to DefaultTitle. The field starts invalid.
func New(title string, input Input, opts ...Option) *Field {
	if title == "" {
		title = DefaultTitle
	}

	f := &Field{
		input: input,
		look: Appearance{
			Title:      title,
			TitleStyle: DefaultTitleStyle,
			InputStyle: DefaultInputStyle,
			HintStyle:  DefaultHintStyle,
			ErrorColor: DefaultErrorColor,
		},
		onChange:  func() {},
		presenter: NopPresenter{},
		logger:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.logger = f.logger.With(logger.Component("form"), logger.Field(title))
	f.initPresentation()
	return f
}

// Setup installs a validation mode and the change callback, then re-runs
// presentation init. A nil callback becomes a no-op.
//
// A field keeps the mode it was first configured with: reconfiguring with the
// same kind of mode replaces it, switching kinds returns ErrModeConflict.
// On error the field is left untouched.
func (f *Field) Setup(m Mode, onChange func()) error {
	var checks validator.CheckGroup
	customError := f.customError

	switch m := m.(type) {
	case nil:
		return ErrNilMode
	case RuleMode:
		if _, ok := f.mode.(CompareMode); ok {
			return fmt.Errorf("%w: %s is in compare mode", ErrModeConflict, f.look.Title)
		}
		checks = validator.NewCheckGroup(validator.FieldCheck{
			Name:  f.look.Title,
			Value: f.Text,
			Rules: m.Rules,
		})
	case CompareMode:
		if _, ok := f.mode.(RuleMode); ok {
			return fmt.Errorf("%w: %s is in rule mode", ErrModeConflict, f.look.Title)
		}
		if isNilTexter(m.Target) {
			return ErrNilTarget
		}
		if t, ok := m.Target.(*Field); ok && t == f {
			return ErrSelfCompare
		}
		if m.Error == "" {
			return ErrEmptyCompareError
		}
		customError = m.Error
	default:
		return fmt.Errorf("form: unsupported mode %T", m)
	}

	if onChange == nil {
		onChange = func() {}
	}
	f.mode = m
	f.checks = checks
	f.customError = customError
	f.onChange = onChange
	f.initPresentation()

	f.logger.Debug("field configured", logger.Mode(ModeName(m)))
	return nil
}

// SetupRules configures rule-based validation.
func (f *Field) SetupRules(rules []validator.CheckRule, onChange func()) error {
	return f.Setup(RuleMode{Rules: rules}, onChange)
}

// SetupCompare configures validation by equality with target's text.
// msg is shown when the texts differ and must not be empty.
func (f *Field) SetupCompare(target Texter, msg string, onChange func()) error {
	return f.Setup(CompareMode{Target: target, Error: msg}, onChange)
}

// Validate recomputes validity from the current text. It does nothing while
// validation is disabled. Otherwise it performs exactly one validity
// assignment, so the presenter and the change callback run once per call.
func (f *Field) Validate() {
	if f.disabled {
		return
	}

	switch m := f.mode.(type) {
	case CompareMode:
		if f.Text() != m.Target.Text() {
			f.lastError = m.Error
			f.setValid(false)
			return
		}
	case RuleMode:
		if err := f.checks.Check(); err != nil {
			f.lastError = validator.Message(err)
			f.setValid(false)
			return
		}
	}

	f.lastError = ""
	f.setValid(true)
}

// OnTextChanged is the text-changed notification from the input widget.
func (f *Field) OnTextChanged() {
	if f.disabled {
		return
	}
	f.Validate()
}

// setValid assigns validity and unconditionally renders and notifies,
// even when v equals the current value.
func (f *Field) setValid(v bool) {
	f.valid = v
	f.presenter.Render(State{
		Valid:    v,
		Hint:     f.Message(),
		ShowHint: !v,
	})

	if v {
		f.logger.Debug("field valid")
	} else {
		f.logger.Debug("field invalid", logger.ValidationMessage(f.lastError))
	}
	f.onChange()
}

// Text returns the input's current value; an absent value or nil input reads as "".
func (f *Field) Text() string {
	if f == nil || f.input == nil {
		return ""
	}
	v, _ := f.input.Value()
	return v
}

// Valid reports the result of the last validity assignment.
func (f *Field) Valid() bool { return f.valid }

// Message returns the hint text: the custom error if configured, else the
// last validation error.
func (f *Field) Message() string {
	if f.customError != "" {
		return f.customError
	}
	return f.lastError
}

// LastError returns the error recorded by the last failed validation, or ""
// after a successful one.
func (f *Field) LastError() string { return f.lastError }

// Mode returns the configured validation mode, nil if none.
func (f *Field) Mode() Mode { return f.mode }

func (f *Field) Title() string { return f.look.Title }

func (f *Field) Appearance() Appearance { return f.look }

func (f *Field) Delegate() any { return f.delegate }

func (f *Field) ValidationDisabled() bool { return f.disabled }

// SetValidationDisabled toggles validation. Disabling forces the field valid,
// which renders and fires the change callback. Enabling changes nothing until
// the next Validate.
func (f *Field) SetValidationDisabled(disabled bool) {
	f.disabled = disabled
	if disabled {
		f.lastError = ""
		f.setValid(true)
	}
}

func (f *Field) SetPassword(on bool) {
	f.look.Secure = on
	f.initPresentation()
}

func (f *Field) SetEmail(on bool) {
	f.look.Keyboard = KeyboardDefault
	if on {
		f.look.Keyboard = KeyboardEmail
	}
	f.initPresentation()
}

func (f *Field) SetLastOnScreen(last bool) {
	f.look.ReturnKey = ReturnDefault
	if last {
		f.look.ReturnKey = ReturnDone
	}
	f.initPresentation()
}

func (f *Field) initPresentation() {
	f.look.Hint = f.customError
	f.look.Autocorrect = false
	f.presenter.Init(f.look)
}

func isNilTexter(t Texter) bool {
	if t == nil {
		return true
	}
	if f, ok := t.(*Field); ok && f == nil {
		return true
	}
	return false
}

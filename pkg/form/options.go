package form

import "log/slog"

// Option configures a Field at construction.
type Option func(*Field)

func WithPlaceholder(s string) Option {
	return func(f *Field) { f.look.Placeholder = s }
}

func WithTitleStyle(id string) Option {
	return func(f *Field) { f.look.TitleStyle = id }
}

func WithInputStyle(id string) Option {
	return func(f *Field) { f.look.InputStyle = id }
}

func WithHintStyle(id string) Option {
	return func(f *Field) { f.look.HintStyle = id }
}

func WithErrorColor(c string) Option {
	return func(f *Field) { f.look.ErrorColor = c }
}

// WithCustomError sets a fixed message that overrides any rule error in the hint.
func WithCustomError(msg string) Option {
	return func(f *Field) { f.customError = msg }
}

// AsPassword hides the typed text.
func AsPassword() Option {
	return func(f *Field) { f.look.Secure = true }
}

// AsEmail requests an email keyboard.
func AsEmail() Option {
	return func(f *Field) { f.look.Keyboard = KeyboardEmail }
}

// LastOnScreen makes the return key read "done".
func LastOnScreen() Option {
	return func(f *Field) { f.look.ReturnKey = ReturnDone }
}

// WithPresenter sets the presenter. Nil is ignored.
func WithPresenter(p Presenter) Option {
	return func(f *Field) {
		if p != nil {
			f.presenter = p
		}
	}
}

// WithDelegate stores an opaque delegate for the UI layer. The field never calls it.
func WithDelegate(d any) Option {
	return func(f *Field) { f.delegate = d }
}

// WithLogger sets the logger used for validation diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

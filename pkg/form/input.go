package form

// Input is the text widget a field reads its value from.
// ok is false when the widget holds no value at all.
type Input interface {
	Value() (value string, ok bool)
}

// Texter is what a comparison target exposes. Only Text is ever read.
type Texter interface {
	Text() string
}

// TextInput is an in-memory Input, useful for tests and headless forms.
// The zero value is absent.
type TextInput struct {
	value *string
}

// NewTextInput returns a TextInput holding value.
func NewTextInput(value string) *TextInput {
	in := &TextInput{}
	in.SetValue(value)
	return in
}

func (in *TextInput) Value() (string, bool) {
	if in == nil || in.value == nil {
		return "", false
	}
	return *in.value, true
}

func (in *TextInput) SetValue(value string) {
	in.value = &value
}

// Clear makes the input absent.
func (in *TextInput) Clear() {
	in.value = nil
}

// Sanitized returns an Input whose present values pass through fn, for
// example to trim an email address before it is validated. A nil fn or nil
// input is returned unchanged.
func Sanitized(in Input, fn func(string) string) Input {
	if in == nil || fn == nil {
		return in
	}
	return sanitizedInput{in: in, fn: fn}
}

type sanitizedInput struct {
	in Input
	fn func(string) string
}

func (s sanitizedInput) Value() (string, bool) {
	v, ok := s.in.Value()
	if !ok {
		return "", false
	}
	return s.fn(v), true
}

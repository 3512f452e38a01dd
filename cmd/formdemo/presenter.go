package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Style IDs from form.Appearance resolve here. Unknown IDs render unstyled.
var styles = map[string]lipgloss.Style{
	form.DefaultTitleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	form.DefaultInputStyle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),
	form.DefaultHintStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	"boldLabel":           lipgloss.NewStyle().Bold(true),
	"mutedHint":           lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
}

var colors = map[string]lipgloss.Color{
	form.DefaultErrorColor: lipgloss.Color("196"),
	"warning":              lipgloss.Color("214"),
}

var (
	focusedColor = lipgloss.Color("63")
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func style(id string) lipgloss.Style {
	if s, ok := styles[id]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// errorColor accepts a named color or any lipgloss color literal.
func errorColor(name string) lipgloss.Color {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// fieldView binds a text input widget to a form field. It is the field's
// Input and its Presenter.
type fieldView struct {
	input *textinput.Model
	look  form.Appearance
	state form.State
}

func newFieldView() *fieldView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 40
	ti.CharLimit = 128
	return &fieldView{input: &ti}
}

func (v *fieldView) Value() (string, bool) {
	return v.input.Value(), true
}

func (v *fieldView) Init(a form.Appearance) {
	v.look = a
	v.input.Placeholder = a.Placeholder
	v.input.EchoMode = textinput.EchoNormal
	if a.Secure {
		v.input.EchoMode = textinput.EchoPassword
		v.input.EchoCharacter = '•'
	}
}

func (v *fieldView) Render(s form.State) {
	v.state = s
}

func (v *fieldView) View(focused bool) string {
	box := style(v.look.InputStyle)
	switch {
	case v.state.ShowHint:
		box = box.BorderForeground(errorColor(v.look.ErrorColor))
	case focused:
		box = box.BorderForeground(focusedColor)
	}

	var b strings.Builder
	b.WriteString(style(v.look.TitleStyle).Render(v.look.Title))
	b.WriteString("\n")
	b.WriteString(box.Render(v.input.View()))
	b.WriteString("\n")
	if v.state.ShowHint && v.state.Hint != "" {
		b.WriteString(style(v.look.HintStyle).Render(v.state.Hint))
	}
	b.WriteString("\n")
	return b.String()
}

// returnLabel is the action the enter key performs on this field.
func (v *fieldView) returnLabel() string {
	if v.look.ReturnKey == form.ReturnDone {
		return "submit"
	}
	return "next"
}

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formspec"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

var (
	submitEnabled  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2)
	submitDisabled = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("236")).Padding(0, 2)
)

// model drives a built form from the bubbletea event loop.
type model struct {
	form      *formspec.Form
	views     map[*form.Field]*fieldView
	focused   *form.Field
	canSubmit bool
	submitted bool
	log       *slog.Logger
}

func newModel(s *formspec.Schema, validationDisabled bool, log *slog.Logger) (*model, error) {
	m := &model{log: log}

	views := make(map[string]*fieldView, len(s.Fields))
	for _, spec := range s.Fields {
		views[spec.Name] = newFieldView()
	}

	f, err := s.Build(
		formspec.WithInputs(formspec.InputFunc(func(name string) form.Input {
			return views[name]
		})),
		formspec.WithPerFieldOptions(func(spec formspec.FieldSpec) []form.Option {
			return []form.Option{form.WithPresenter(views[spec.Name])}
		}),
		formspec.WithOnChange(m.refresh),
		formspec.WithValidationDisabled(validationDisabled),
		formspec.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	m.form = f
	m.views = make(map[*form.Field]*fieldView, len(views))
	for _, name := range f.Names() {
		m.views[f.Field(name)] = views[name]
	}
	m.canSubmit = f.Valid()
	m.focused = f.Fields()[0]
	return m, nil
}

// refresh is the change callback of every field.
func (m *model) refresh() {
	if m.form == nil {
		return
	}
	m.canSubmit = m.form.Valid()
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.views[m.focused].input.Focus())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	fields := m.form.Fields()
	switch key.String() {
	case "ctrl+c", "esc":
		m.log.Info("form abandoned", logger.Fields(len(fields), len(fields.Invalid())))
		return m, tea.Quit
	case "shift+tab", "up":
		return m, m.moveTo(fields.Prev(m.focused))
	case "tab", "down":
		return m, m.moveTo(fields.Next(m.focused))
	case "enter":
		if next := fields.Next(m.focused); next != nil {
			return m, m.moveTo(next)
		}
		return m, m.submit()
	}
	return m, m.updateFocused(msg)
}

// updateFocused forwards msg to the focused input and validates the field
// when its text changed.
func (m *model) updateFocused(msg tea.Msg) tea.Cmd {
	v := m.views[m.focused]
	before := v.input.Value()

	var cmd tea.Cmd
	*v.input, cmd = v.input.Update(msg)

	if v.input.Value() != before {
		m.focused.OnTextChanged()
	}
	return cmd
}

func (m *model) moveTo(target *form.Field) tea.Cmd {
	if target == nil || target == m.focused {
		return nil
	}
	m.views[m.focused].input.Blur()
	m.focused = target
	return m.views[target].input.Focus()
}

// submit validates every field. A valid form quits; otherwise focus jumps to
// the first invalid field.
func (m *model) submit() tea.Cmd {
	m.form.ValidateAll()
	fields := m.form.Fields()
	if !m.form.Valid() {
		m.log.Debug("submit rejected", logger.Error(m.form.Errors()))
		return m.moveTo(fields.Invalid()[0])
	}

	m.submitted = true
	m.log.Info("form submitted", slog.String("form", m.form.Name()), logger.Fields(len(fields), 0))
	return tea.Quit
}

func (m *model) View() string {
	if m.submitted {
		return fmt.Sprintf("Form %q submitted.\n", m.form.Name())
	}

	var b strings.Builder
	for _, f := range m.form.Fields() {
		b.WriteString(m.views[f].View(f == m.focused))
		b.WriteString("\n")
	}

	button := submitDisabled
	if m.canSubmit {
		button = submitEnabled
	}
	b.WriteString(button.Render("Sign up"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("tab/shift+tab: move • enter: %s • esc: quit", m.views[m.focused].returnLabel())))
	b.WriteString("\n")
	return b.String()
}

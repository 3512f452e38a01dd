package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/formspec"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func newTestModel(t *testing.T, validationDisabled bool) *model {
	t.Helper()
	s, err := formspec.Parse(defaultSchema)
	require.NoError(t, err)
	m, err := newModel(s, validationDisabled, logger.Discard())
	require.NoError(t, err)
	m.Init()
	return m
}

func typeText(m *model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestModel(t *testing.T) {
	t.Run("validates the focused field as the user types", func(t *testing.T) {
		m := newTestModel(t, false)
		email := m.form.Field("email")
		require.Same(t, email, m.focused)

		typeText(m, "user@")
		assert.False(t, email.Valid())
		assert.True(t, m.views[email].state.ShowHint)
		assert.Equal(t, "must be a valid email address", m.views[email].state.Hint)

		typeText(m, "example.com")
		assert.True(t, email.Valid())
		assert.False(t, m.views[email].state.ShowHint)
		assert.Equal(t, "user@example.com", email.Text())
	})

	t.Run("navigates in tab order", func(t *testing.T) {
		m := newTestModel(t, false)
		fields := m.form.Fields()

		press(m, tea.KeyTab)
		assert.Same(t, fields[1], m.focused)
		press(m, tea.KeyEnter)
		assert.Same(t, fields[2], m.focused)
		press(m, tea.KeyTab)
		assert.Same(t, fields[2], m.focused, "tab on the last field stays put")
		press(m, tea.KeyShiftTab)
		assert.Same(t, fields[1], m.focused)
	})

	t.Run("rejected submit focuses the first invalid field", func(t *testing.T) {
		m := newTestModel(t, false)
		typeText(m, "user@example.com")
		press(m, tea.KeyTab)
		press(m, tea.KeyTab)

		press(m, tea.KeyEnter)
		assert.False(t, m.submitted)
		assert.Same(t, m.form.Field("password"), m.focused)
		assert.False(t, m.canSubmit)
	})

	t.Run("valid form submits", func(t *testing.T) {
		m := newTestModel(t, false)
		typeText(m, "user@example.com")
		press(m, tea.KeyTab)
		typeText(m, "Tr0ub4dor&3")
		press(m, tea.KeyTab)
		typeText(m, "Tr0ub4dor&3")
		assert.True(t, m.canSubmit)

		cmd := press(m, tea.KeyEnter)
		require.NotNil(t, cmd)
		assert.True(t, m.submitted)
		assert.Contains(t, m.View(), `"signup" submitted`)
	})

	t.Run("disabled validation accepts an empty form", func(t *testing.T) {
		m := newTestModel(t, true)
		assert.True(t, m.canSubmit)

		press(m, tea.KeyTab)
		press(m, tea.KeyTab)
		press(m, tea.KeyEnter)
		assert.True(t, m.submitted)
	})

	t.Run("renders fields and help", func(t *testing.T) {
		m := newTestModel(t, false)
		view := m.View()
		assert.Contains(t, view, "Email")
		assert.Contains(t, view, "Confirm password")
		assert.Contains(t, view, "Sign up")
		assert.Contains(t, view, "enter: next")

		press(m, tea.KeyTab)
		press(m, tea.KeyTab)
		assert.Contains(t, m.View(), "enter: submit")
	})
}

func TestFieldView(t *testing.T) {
	t.Run("secure fields mask input", func(t *testing.T) {
		m := newTestModel(t, false)
		password := m.views[m.form.Field("password")]
		assert.True(t, password.look.Secure)
		assert.Equal(t, '•', password.input.EchoCharacter)
		assert.Equal(t, "at least 8 characters", password.input.Placeholder)
	})

	t.Run("resolves styles and colors", func(t *testing.T) {
		assert.Equal(t, styles["boldLabel"].Render("x"), style("boldLabel").Render("x"))
		assert.Equal(t, "x", style("unknown").Render("x"))
		assert.Equal(t, colors["error"], errorColor("error"))
		assert.Equal(t, "#ff0000", string(errorColor("#ff0000")))
	})
}

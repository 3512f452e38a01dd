package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestTransforms(t *testing.T) {
	tests := []struct {
		name string
		fn   sanitizer.Func
		in   string
		want string
	}{
		{"trim", sanitizer.Trim, "  hello \n", "hello"},
		{"lower", sanitizer.ToLower, "HeLLo", "hello"},
		{"upper", sanitizer.ToUpper, "HeLLo", "HELLO"},
		{"collapse", sanitizer.CollapseWhitespace, "  Jane \t  Doe ", "Jane Doe"},
		{"strip control", sanitizer.StripControl, "a\x00b\x1b[31mc\x1b[0m\td", "abc\td"},
		{"single line", sanitizer.SingleLine, "line one\r\nline   two\n", "line one line two"},
		{"digits", sanitizer.KeepDigits, "(415) 555-2671", "4155552671"},
		{"email", sanitizer.NormalizeEmail, "  John..Doe.@Example.COM ", "john.doe@example.com"},
		{"email without at", sanitizer.NormalizeEmail, " Not An Email ", "not an email"},
		{"email with two ats", sanitizer.NormalizeEmail, "a@b@c", "a@b@c"},
		{"phone international", sanitizer.NormalizePhone, " +1 (415) 555-2671", "+14155552671"},
		{"phone local", sanitizer.NormalizePhone, "415.555.2671", "4155552671"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestChain(t *testing.T) {
	clean := sanitizer.Chain(sanitizer.Trim, nil, sanitizer.ToUpper)
	assert.Equal(t, "ABC", clean("  abc "))
	assert.Equal(t, "x", sanitizer.Chain()("x"))
}

func TestParse(t *testing.T) {
	t.Run("chains named transforms in order", func(t *testing.T) {
		fn, err := sanitizer.Parse([]string{"trim", " lower "})
		require.NoError(t, err)
		assert.Equal(t, "abc", fn("  ABC  "))
	})

	t.Run("empty list", func(t *testing.T) {
		fn, err := sanitizer.Parse(nil)
		require.NoError(t, err)
		assert.Nil(t, fn)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := sanitizer.Parse([]string{"trim", "rot13"})
		assert.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
		assert.Contains(t, err.Error(), `"rot13"`)
	})
}

func TestRegister(t *testing.T) {
	sanitizer.Register("reverse_words", func(s string) string {
		words := strings.Fields(s)
		for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
			words[i], words[j] = words[j], words[i]
		}
		return strings.Join(words, " ")
	})
	sanitizer.Register("", sanitizer.Trim)
	sanitizer.Register("noop", nil)

	fn, ok := sanitizer.Lookup("reverse_words")
	require.True(t, ok)
	assert.Equal(t, "b a", fn("a b"))

	_, ok = sanitizer.Lookup("noop")
	assert.False(t, ok)
}

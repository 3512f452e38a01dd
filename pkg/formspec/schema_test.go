package formspec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/formspec"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const signupYAML = `
name: signup
fields:
  - name: email
    title: Email
    placeholder: you@example.com
    type: email
    rules: [required, email]
  - name: password
    title: Password
    type: password
    rules: ["required", "min_len:8"]
  - name: confirm
    title: Confirm password
    type: password
    compare_with: password
    error: Passwords do not match
`

func TestParse(t *testing.T) {
	t.Run("parses a valid schema", func(t *testing.T) {
		s, err := formspec.Parse([]byte(signupYAML))
		require.NoError(t, err)
		assert.Equal(t, "signup", s.Name)
		require.Len(t, s.Fields, 3)

		email := s.Fields[0]
		assert.Equal(t, "email", email.Name)
		assert.Equal(t, formspec.TypeEmail, email.Type)
		assert.Equal(t, []string{"required", "email"}, email.Rules)

		confirm, ok := s.Field("confirm")
		require.True(t, ok)
		assert.Equal(t, "password", confirm.CompareWith)
		assert.Equal(t, "Passwords do not match", confirm.Error)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := formspec.Parse([]byte("fields:\n  - name: a\n    colour: red\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, formspec.ErrFailedToParseYAML)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := formspec.Parse([]byte("fields: [\n"))
		assert.ErrorIs(t, err, formspec.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := formspec.Parse(nil)
		assert.ErrorIs(t, err, formspec.ErrInvalidSchema)
		assert.ErrorIs(t, err, formspec.ErrNoFields)
	})
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name   string
		fields []formspec.FieldSpec
		want   error
	}{
		{
			name:   "empty name",
			fields: []formspec.FieldSpec{{Title: "x"}},
			want:   formspec.ErrEmptyFieldName,
		},
		{
			name:   "duplicate name",
			fields: []formspec.FieldSpec{{Name: "a"}, {Name: "a"}},
			want:   formspec.ErrDuplicateField,
		},
		{
			name:   "unknown type",
			fields: []formspec.FieldSpec{{Name: "a", Type: "date"}},
			want:   formspec.ErrUnknownFieldType,
		},
		{
			name: "both modes",
			fields: []formspec.FieldSpec{
				{Name: "a"},
				{Name: "b", Rules: []string{"required"}, CompareWith: "a", Error: "x"},
			},
			want: formspec.ErrConflictingModes,
		},
		{
			name:   "unknown target",
			fields: []formspec.FieldSpec{{Name: "b", CompareWith: "missing", Error: "x"}},
			want:   formspec.ErrUnknownTarget,
		},
		{
			name:   "self target",
			fields: []formspec.FieldSpec{{Name: "b", CompareWith: "b", Error: "x"}},
			want:   formspec.ErrUnknownTarget,
		},
		{
			name:   "unknown sanitizer",
			fields: []formspec.FieldSpec{{Name: "a", Sanitize: []string{"trim", "rot13"}}},
			want:   sanitizer.ErrUnknownSanitizer,
		},
		{
			name:   "compare without error",
			fields: []formspec.FieldSpec{{Name: "a"}, {Name: "b", CompareWith: "a"}},
			want:   formspec.ErrMissingCompareError,
		},
		{
			name:   "unknown rule",
			fields: []formspec.FieldSpec{{Name: "a", Rules: []string{"luhn"}}},
			want:   validator.ErrUnknownRule,
		},
		{
			name:   "bad rule params",
			fields: []formspec.FieldSpec{{Name: "a", Rules: []string{"min_len:x"}}},
			want:   validator.ErrInvalidRuleParams,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := formspec.Schema{Fields: tt.fields}
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, formspec.ErrInvalidSchema)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		s := formspec.Schema{Fields: []formspec.FieldSpec{
			{Name: "a", Type: "date"},
			{Name: "a", Rules: []string{"nope"}},
		}}
		err := s.Validate()
		assert.ErrorIs(t, err, formspec.ErrUnknownFieldType)
		assert.ErrorIs(t, err, formspec.ErrDuplicateField)
		assert.ErrorIs(t, err, validator.ErrUnknownRule)
	})

	t.Run("forward compare target is allowed", func(t *testing.T) {
		s := formspec.Schema{Fields: []formspec.FieldSpec{
			{Name: "confirm", CompareWith: "password", Error: "mismatch"},
			{Name: "password"},
		}}
		assert.NoError(t, s.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(signupYAML), 0o600))

		s, err := formspec.Load(path)
		require.NoError(t, err)
		assert.Len(t, s.Fields, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := formspec.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, formspec.ErrFailedToReadFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

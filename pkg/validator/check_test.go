package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestFieldCheck_Check(t *testing.T) {
	t.Run("passes when every rule passes", func(t *testing.T) {
		c := validator.FieldCheck{
			Name:  "Email",
			Value: func() string { return "user@example.com" },
			Rules: []validator.CheckRule{validator.Required, validator.Email},
		}
		assert.NoError(t, c.Check())
	})

	t.Run("reports the first failing rule in declaration order", func(t *testing.T) {
		c := validator.FieldCheck{
			Name:  "Password",
			Value: func() string { return "abc" },
			Rules: []validator.CheckRule{validator.Required, validator.MinLen(8), validator.Numeric},
		}
		err := c.Check()
		require.Error(t, err)

		var ve validator.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Password", ve.Field)
		assert.Equal(t, "must be at least 8 characters long", ve.Message)
	})

	t.Run("reads the value on every check", func(t *testing.T) {
		value := ""
		c := validator.FieldCheck{
			Name:  "Name",
			Value: func() string { return value },
			Rules: []validator.CheckRule{validator.Required},
		}
		assert.Error(t, c.Check())
		value = "Ann"
		assert.NoError(t, c.Check())
	})

	t.Run("treats missing value as empty", func(t *testing.T) {
		c := validator.FieldCheck{Name: "Name", Rules: []validator.CheckRule{validator.Required}}
		assert.Error(t, c.Check())
	})

	t.Run("skips nil rules", func(t *testing.T) {
		c := validator.FieldCheck{
			Name:  "Name",
			Value: func() string { return "x" },
			Rules: []validator.CheckRule{nil, validator.Required},
		}
		assert.NoError(t, c.Check())
	})

	t.Run("no rules always passes", func(t *testing.T) {
		assert.NoError(t, validator.FieldCheck{Name: "Name"}.Check())
	})
}

func TestCheckGroup(t *testing.T) {
	email := validator.FieldCheck{
		Name:  "Email",
		Value: func() string { return "bad" },
		Rules: []validator.CheckRule{validator.Required, validator.Email},
	}
	password := validator.FieldCheck{
		Name:  "Password",
		Value: func() string { return "" },
		Rules: []validator.CheckRule{validator.Required, validator.MinLen(8)},
	}

	t.Run("check returns first failure across members", func(t *testing.T) {
		err := validator.NewCheckGroup(email, password).Check()
		require.Error(t, err)
		assert.Equal(t, "must be a valid email address", validator.Message(err))
	})

	t.Run("check all collects every failure", func(t *testing.T) {
		err := validator.NewCheckGroup(email, password).CheckAll()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Equal(t, []string{"must be a valid email address"}, errs.Get("Email"))
		assert.Equal(t, []string{"field is required", "must be at least 8 characters long"}, errs.Get("Password"))
	})

	t.Run("empty group passes", func(t *testing.T) {
		assert.NoError(t, validator.NewCheckGroup().Check())
		assert.NoError(t, validator.NewCheckGroup().CheckAll())
	})
}

package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestStrongPassword(t *testing.T) {
	t.Run("default policy", func(t *testing.T) {
		rule := validator.StrongPassword(validator.DefaultPasswordStrength())

		tests := []struct {
			value string
			want  bool
		}{
			{"Passw0rd", true},
			{"Correct-Horse-9", true},
			{"password1", false},
			{"PASSWORD1", false},
			{"Password", false},
			{"Pa5s", false},
			{"Aa1" + strings.Repeat("x", 126), false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, rule("password", tt.value).Check(), tt.value)
		}
	})

	t.Run("requires special characters when asked", func(t *testing.T) {
		policy := validator.DefaultPasswordStrength()
		policy.RequireSpecial = true
		policy.MinCharClasses = 4
		rule := validator.StrongPassword(policy)

		assert.False(t, rule("password", "Passw0rd").Check())
		assert.True(t, rule("password", "Passw0rd!").Check())
	})

	t.Run("error carries the policy", func(t *testing.T) {
		r := validator.StrongPassword(validator.DefaultPasswordStrength())("password", "")
		assert.Equal(t, "password must be 8-128 characters with required character types", r.Error.Message)
		assert.Equal(t, 3, r.Error.TranslationValues["min_char_classes"])
	})
}

func TestNotCommonPassword(t *testing.T) {
	assert.False(t, validator.NotCommonPassword("password", "password").Check())
	assert.False(t, validator.NotCommonPassword("password", "QWERTY").Check())
	assert.True(t, validator.NotCommonPassword("password", "x7!Kq9zT").Check())
}

func TestNoRepeatingChars(t *testing.T) {
	rule := validator.NoRepeatingChars(2)
	assert.True(t, rule("password", "").Check())
	assert.True(t, rule("password", "aabbaa").Check())
	assert.False(t, rule("password", "abbbc").Check())
	assert.False(t, rule("password", "ééé").Check())
}

func TestNoSequentialChars(t *testing.T) {
	rule := validator.NoSequentialChars(3)
	assert.True(t, rule("password", "abc").Check())
	assert.True(t, rule("password", "abcba").Check(), "direction change restarts the run")
	assert.True(t, rule("password", "a1b2c3").Check())
	assert.False(t, rule("password", "xabcd").Check())
	assert.False(t, rule("password", "4321").Check())
}

func TestPasswordEntropy(t *testing.T) {
	assert.False(t, validator.PasswordEntropy(30)("password", "aaaaaaaa").Check())
	assert.True(t, validator.PasswordEntropy(40)("password", "Tr0ub4dor&3x").Check())
	assert.False(t, validator.PasswordEntropy(50)("password", "Tr0ub4dor&3x").Check())
	assert.False(t, validator.PasswordEntropy(1)("password", "").Check())
	assert.Equal(t,
		"password entropy too low, minimum 40.0 bits required",
		validator.PasswordEntropy(40)("password", "").Error.Message,
	)
}

package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("!!Securepassword111"))

	for _, pw := range []string{"short", "nouppercase1!", "NoDigits!!", "NoSpecial123"} {
		assert.Error(t, ValidatePasswordStrength(pw), "password %q", pw)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("!!Securepassword111")
	assert.NoError(t, err)
	assert.NotEqual(t, "!!Securepassword111", hashed)

	assert.NoError(t, CheckPassword(hashed, "!!Securepassword111"))
	assert.Equal(t, ErrPasswordMismatch, CheckPassword(hashed, "wrong"))
}

func TestHashPasswordRejectsWeakInput(t *testing.T) {
	_, err := HashPassword("weak")
	assert.Error(t, err)
}

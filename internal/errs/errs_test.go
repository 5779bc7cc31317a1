package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := Validationf("amount", "must not be negative, got %s", "-1")
	assert.EqualError(t, err, "invalid amount: must not be negative, got -1")
	assert.True(t, IsValidation(err))
	assert.False(t, IsDatabase(err))
}

func TestDatabaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapDatabase("insert order", cause)
	assert.EqualError(t, err, "insert order: connection refused")
	assert.True(t, IsDatabase(err))
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, WrapDatabase("insert order", nil))
}

func TestConfigError(t *testing.T) {
	err := NewConfig("DB_PASSWORD")
	assert.EqualError(t, err, "missing required environment variable: DB_PASSWORD")
	assert.True(t, IsConfig(err))
	assert.False(t, IsValidation(err))
}

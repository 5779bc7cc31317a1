package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwambold/order-automation/internal/errs"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_NAME", "orders_demo")
	t.Setenv("DB_USER", "demo_user")
	t.Setenv("DB_PASSWORD", "demo_pass")
}

func TestLoad(t *testing.T) {
	t.Run("applies host and port defaults", func(t *testing.T) {
		setRequiredEnv(t)
		// t.Setenv registers the restore; defaults only kick in for absent
		// variables, not empty ones.
		t.Setenv("DB_HOST", "placeholder")
		t.Setenv("DB_PORT", "placeholder")
		require.NoError(t, os.Unsetenv("DB_HOST"))
		require.NoError(t, os.Unsetenv("DB_PORT"))

		require.NoError(t, Load(""))

		c := Get()
		assert.Equal(t, "orders_demo", c.PostgresDatabase)
		assert.Equal(t, "localhost", c.PostgresHost)
		assert.Equal(t, "5432", c.PostgresPort)
	})

	t.Run("keeps explicit host and port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "6432")

		require.NoError(t, Load(""))
		assert.Equal(t, "db.internal", Get().PostgresHost)
		assert.Equal(t, "6432", Get().PostgresPort)
	})

	t.Run("fails on missing required settings", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_PASSWORD", "")

		err := Load("")
		assert.True(t, errs.IsConfig(err), "expected ConfigError, got %v", err)
	})

	t.Run("fails on unreadable env file", func(t *testing.T) {
		setRequiredEnv(t)
		err := Load("does-not-exist.env")
		assert.Error(t, err)
	})
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	t.Run("InvalidConnectionString", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_CONNECTION_STRING", "invalid-connection-string")

		err := RunMigrations()
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})
}

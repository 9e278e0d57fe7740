package canvasrecorder

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		homeDir := t.TempDir()
		configDir := filepath.Join(homeDir, "configs")
		require.NoError(t, os.Mkdir(configDir, 0o700))

		envPath := filepath.Join(configDir, "env.yaml")
		require.NoError(t, os.WriteFile(envPath, []byte("port: 9090"), 0o600))

		app, err := newApp(envPath, &sync.WaitGroup{})
		require.NoError(t, err)

		require.Equal(t, 9090, app.Env.Port)
		require.Equal(t, homeDir, app.Env.HomeDir)
		require.True(t, app.Auth.AuthDisabled())
	})
	t.Run("missingEnv", func(t *testing.T) {
		_, err := newApp("/nonexistent/env.yaml", &sync.WaitGroup{})
		require.Error(t, err)
	})
	t.Run("badEnv", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), "env.yaml")
		require.NoError(t, os.WriteFile(envPath, []byte("homeDir: .relative"), 0o600))

		_, err := newApp(envPath, &sync.WaitGroup{})
		require.Error(t, err)
	})
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud", Environment: "development"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitialize_ProductionWritesLogFiles(t *testing.T) {
	previous := Log
	t.Cleanup(func() { Log = previous })

	dir := t.TempDir()
	err := Initialize(Config{
		Level:       "info",
		LogDir:      dir,
		Environment: "production",
		ServiceName: "formsdemo",
		MaxSizeMB:   1,
		MaxBackups:  1,
	})
	require.NoError(t, err)

	Error("something broke", zap.String("field", "age"))
	Sync()

	for _, name := range []string{"app.log", "error.log"} {
		data, readErr := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, readErr, name)
		assert.Contains(t, string(data), "something broke", name)
	}
}

package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet-logistics-service/internal/pkg/logger"
)

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := logger.New("verbose", nil)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(0))   // info
	assert.False(t, log.Core().Enabled(-1)) // debug
}

func TestNew_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.log")

	log, err := logger.New("info", &logger.FileConfig{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("station created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "station created")
}

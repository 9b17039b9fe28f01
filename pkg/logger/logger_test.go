package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFormattedJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LogLevelInfo)

	log.Info("CreateBooking: room=%s pets=%d", "VIP 01", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "CreateBooking: room=VIP 01 pets=2", entry["message"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, LogLevelWarn)

	log.Info("skipped")
	log.Debug("skipped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, LogLevelInfo, "production")
	require.NoError(t, err)
	log.Error("sync failed: %v", "timeout")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sync failed: timeout")
}

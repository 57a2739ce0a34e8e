package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ginjaninja78/address-label-converter/internal/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter("info", "json", &buf)

	log.Debugf("hidden %d", 1)
	log.Infof("converted %d records", 3)
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "converted 3 records", entry["msg"])
}

func TestNewWithWriterConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logging.NewWithWriter("warn", "console", &buf)

	log.Infof("hidden")
	log.Warnf("LAND defaulted for %s", "Atlantis")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "LAND defaulted for Atlantis")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLoggerInterface(t *testing.T) {
	t.Parallel()

	var _ logging.Logger = logging.Nop()
	var _ logging.Logger = logging.New("info", "console")
}

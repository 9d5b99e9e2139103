package zerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/raykavin/tsutil/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "debug", JSON: true})
	require.NoError(t, err)

	log.WithFields(map[string]any{"series": "btc", "rows": 3}).
		WithError(errors.New("boom")).
		Infof("loaded %d rows", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "loaded 3 rows", entry["message"])
	assert.Equal(t, "btc", entry["series"])
	assert.Equal(t, float64(3), entry["rows"])
	assert.Equal(t, "boom", entry["error"])
}

func TestAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "warn", JSON: true})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	log.SetLevel(logger.ErrorLevel)
	buf.Reset()
	log.Warnf("hidden %d", 1)
	assert.Zero(t, buf.Len())

	log.SetLevel(logger.DebugLevel)
	log.WithField("k", "v").Debug("visible")
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Options{Level: "info", TimeLayout: "15:04:05", Colored: false})
	require.NoError(t, err)

	log.Error("console line")
	assert.Contains(t, buf.String(), "console line")
}

func TestLevelConversion(t *testing.T) {
	for _, level := range []logger.Level{
		logger.Disabled, logger.TraceLevel, logger.DebugLevel, logger.InfoLevel,
		logger.WarnLevel, logger.ErrorLevel, logger.NoLevel,
	} {
		assert.Equal(t, level, toLevel(toZerologLevel(level)))
	}
}

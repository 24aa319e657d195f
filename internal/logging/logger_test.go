package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "json")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("symbol", "AAPL").Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "AAPL", entry["symbol"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewWithWriter_DefaultsToInfoText(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud", "")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "level=warning")
}

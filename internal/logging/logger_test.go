package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wortkiste/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

		logger.WithField("language", "de").Info("Dictionary ready")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "de", entry["language"])
		assert.Equal(t, "Dictionary ready", entry["msg"])
	})

	t.Run("default level", func(t *testing.T) {
		logger, err := NewWithOutput(config.LogConfig{}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud"})
		assert.ErrorContains(t, err, "parse log level")
	})
}

package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{
		Level:      InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
		Pretty:     false,
	})

	l.Info("server started")

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"message":"server started"`)
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{
		Level:      WarnLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.Warn("kept")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestNewLoggerPretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{
		Level:      InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
		Pretty:     true,
	})

	l.Info("readable output")

	out := buf.String()
	assert.Contains(t, out, "readable output")
	assert.NotContains(t, out, `"message"`, "console writer does not emit raw JSON keys")
}

func TestNewLoggerNilConfigDefaults(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogger(nil).Debug("below default level, discarded")
	})
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{
		Level:      InfoLevel,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})

	l.WithFields(map[string]interface{}{"request_id": "abc"}).Info("tagged")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"abc"`)
	assert.Contains(t, out, `"message":"tagged"`)
}

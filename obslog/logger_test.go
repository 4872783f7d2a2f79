package obslog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDiscard_ConformsToInterface(t *testing.T) {
	var l Logger = Discard{}
	l = l.WithField("k", "v")
	l = l.WithFields(map[string]any{"a": 1})
	l = l.WithError(errors.New("boom"))
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
}

func TestNewZerolog_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologWriter(&buf, zerolog.DebugLevel)

	l.WithField("restart", 3).Info("improved")

	out := buf.String()
	assert.Contains(t, out, `"restart":3`)
	assert.Contains(t, out, `"message":"improved"`)
}

func TestNewZerolog_WithError(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologWriter(&buf, zerolog.DebugLevel)

	l.WithError(errors.New("boom")).Error("failed")

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
}

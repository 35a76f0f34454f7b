package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger_Info(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Info("trip computed", Field{Key: "legs", Value: 3}, Field{Key: "home", Value: "ICN"})

	output := buf.String()
	assert.Contains(t, output, "trip computed")
	assert.Contains(t, output, `"legs":3`)
	assert.Contains(t, output, `"home":"ICN"`)
	assert.Contains(t, output, `"level":"info"`)
}

func TestZeroLogger_DebugShownInDev(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Debug("debug-test")

	assert.Contains(t, buf.String(), "debug-test")
}

func TestZeroLogger_DebugHiddenInProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("production", buf)

	log.Debug("debug-hidden")

	assert.Empty(t, buf.String(), "debug lines must not be written in production")
}

func TestZeroLogger_ProductionDoesNotLeakIntoDev(t *testing.T) {
	prodBuf := &bytes.Buffer{}
	_ = NewWithWriter("production", prodBuf)

	devBuf := &bytes.Buffer{}
	dev := NewWithWriter("development", devBuf)
	dev.Debug("still-visible")

	assert.Contains(t, devBuf.String(), "still-visible")
}

func TestZeroLogger_Warn(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Warn("warn-test", Field{Key: "warn", Value: "yes"})

	output := buf.String()
	assert.Contains(t, output, `"level":"warn"`)
	assert.Contains(t, output, `"warn":"yes"`)
}

func TestZeroLogger_ErrorField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf)

	log.Error("error-test", Field{Key: "err", Value: errors.New("boom")})

	output := buf.String()
	assert.Contains(t, output, `"level":"error"`)
	assert.Contains(t, output, `"err":"boom"`)
}

func TestZeroLogger_With(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter("development", buf).With(Field{Key: "component", Value: "savedtrip"})

	log.Info("listed")

	assert.Contains(t, buf.String(), `"component":"savedtrip"`)
}

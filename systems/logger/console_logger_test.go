package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests field pairing helper.
func TestWithFields(t *testing.T) {
	fields := withFields("system", "hub", "serial", "SN1")
	assert.Equal(t, 2, len(fields), "pairs")
	assert.Equal(t, "hub", fields["system"], "system")
	assert.Equal(t, "SN1", fields["serial"], "serial")

	odd := withFields("system", "hub", "dangling")
	assert.Equal(t, 1, len(odd), "odd field dropped")
}

// Tests that log calls do not panic.
func TestConsoleLogger(t *testing.T) {
	log := NewConsoleLogger()
	log.Debug("debug", "system", "test")
	log.Info("info")
	log.Warn("warn", "serial", "SN1")
	log.Error("error", errors.New("boom"))
	log.Flush()
	assert.NotNil(t, log, "constructed")
}

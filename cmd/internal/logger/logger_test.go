package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestDebugRequiresVerbose(t *testing.T) {
	var quiet bytes.Buffer
	logger := NewLogger(zapcore.AddSync(&quiet), false)
	logger.Debug("added resource")
	logger.Info("composing")

	assert.NotContains(t, quiet.String(), "added resource")
	assert.Contains(t, quiet.String(), "composing")

	var verbose bytes.Buffer
	logger = NewLogger(zapcore.AddSync(&verbose), true)
	logger.Debug("added resource")

	assert.Contains(t, verbose.String(), "added resource")
	assert.Contains(t, verbose.String(), "debug")
}

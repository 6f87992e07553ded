package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTraceID(t *testing.T) {
	traceID := NewTraceID()
	assert.NotEmpty(t, traceID)
	assert.NotEqual(t, traceID, NewTraceID())
}

func TestNewRequestContext(t *testing.T) {
	ctx, logger := NewRequestContext(context.Background(), "cli")

	assert.NotEmpty(t, logger.GetTraceID())
	extracted := FromContext(ctx)
	assert.Equal(t, logger.GetTraceID(), extracted.GetTraceID())
	assert.Equal(t, "cli", extracted.moduleInfo)
}

func TestFromContext_NoLogger(t *testing.T) {
	assert.Equal(t, "default", FromContext(nil).moduleInfo)
	assert.Equal(t, "default", FromContext(context.Background()).moduleInfo)
}

func TestContextHelpers(t *testing.T) {
	logger, buf := setupTestLogger(t)
	ctx := logger.WithContext(context.Background())
	ctx = WithField(ctx, "count", 2)

	Info(ctx, "from context")
	logMap := parseLogOutput(t, buf)
	assert.Equal(t, "from context", logMap["message"])
	assert.Equal(t, float64(2), logMap["count"])

	buf.Reset()
	Error(ctx, nil, "context error")
	logMap = parseLogOutput(t, buf)
	assert.Equal(t, "error", logMap["level"])
}

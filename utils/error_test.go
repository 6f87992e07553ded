package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	errMsg := "test error message"
	err := Error(errMsg)
	assert.Equal(t, errMsg, err.Error())

	// sentinels survive wrapping
	const errSentinel = Error("sentinel")
	wrapped := fmt.Errorf("context: %w", errSentinel)
	assert.True(t, errors.Is(wrapped, errSentinel))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		v := Must("value", nil)
		assert.Equal(t, "value", v)
	})

	expectedError := Error("expected panic error")
	assert.PanicsWithValue(t, expectedError, func() {
		Must(0, expectedError)
	})
}

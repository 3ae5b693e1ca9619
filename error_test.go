package lunagames_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/lunagames"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := lunagames.Errorf(lunagames.EUNAVAILABLE, "HTTP %d for %s", 503, "https://luna.example")

	assert.Equal(t, lunagames.EUNAVAILABLE, lunagames.ErrorCode(err))
	assert.Equal(t, "HTTP 503 for https://luna.example", lunagames.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", lunagames.Errorf(lunagames.EUNAVAILABLE, "down"))

	assert.Equal(t, lunagames.EUNAVAILABLE, lunagames.ErrorCode(err))
	assert.Equal(t, "down", lunagames.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, lunagames.EINTERNAL, lunagames.ErrorCode(err))
	assert.Equal(t, "Internal error.", lunagames.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lunagames.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lunagames.ErrorMessage(nil))
}

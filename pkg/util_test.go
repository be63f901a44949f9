package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("open final_city_predictions.msgpack: no such file")
	err := WrapErrorf(orig, ErrBadParamInput, "dataset %s", "final_city_predictions.msgpack")

	assert.ErrorIs(t, err, orig)
	assert.Contains(t, err.Error(), "dataset final_city_predictions.msgpack")
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))

	wrapped := fmt.Errorf("load: %w", err)
	assert.Equal(t, ErrBadParamInput, ErrorCode(wrapped))
	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("plain")))
}

func TestNormalizeCity(t *testing.T) {
	assert.Equal(t, "andheri", NormalizeCity("AnDhErI"))
	assert.Equal(t, NormalizeCity("BORIVALI"), NormalizeCity("borivali"))
}

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatchingThroughWrapping(t *testing.T) {
	err := fmt.Errorf("submit: %w", NotFound("test %d not found", 7))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, KindOf(err).HTTPStatus())
	assert.Equal(t, "test 7 not found", PublicMessage(err))
}

func TestStorageHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	err := Storage(cause, "insert test result")

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, KindOf(err).HTTPStatus())
	assert.Equal(t, "internal server error", PublicMessage(err))
}

func TestStorageKeepsClassifiedErrors(t *testing.T) {
	original := Validation("title is required")

	assert.Same(t, original, Storage(original, "create test"))
	assert.Nil(t, Storage(nil, "noop"))
}

func TestUnclassifiedErrorsAreStorage(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, "internal server error", PublicMessage(err))
}

package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	wrapped := fmt.Errorf("review: %w", NotFound("submission not found"))
	e := FromError(wrapped)
	assert.Equal(t, "NOT_FOUND", e.Code)
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, "submission not found", e.Message)

	e = FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, e.Code)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("create: %w", Validation("Required: title"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestUpstreamUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Upstream(cause, "iCal fetch failed")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, "iCal fetch failed: dial tcp: refused", err.Error())
}

func TestClone(t *testing.T) {
	c := Clone(ErrConflict, "")
	assert.Equal(t, ErrConflict.Message, c.Message)
	assert.NotSame(t, ErrConflict, c)
	assert.Nil(t, Clone(nil, "x"))
}

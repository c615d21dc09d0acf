package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, MalformedInput("bad upload", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Processing("decode failed", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).StatusCode())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("bad xref")
	err := Processing("decode failed", cause)

	assert.Equal(t, "decode failed: bad xref", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorWithoutCause(t *testing.T) {
	err := MalformedInput("File must be a PDF", nil)
	assert.Equal(t, "File must be a PDF", err.Error())
}

package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"stayops/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "check_out must be after check_in"}

	assert.Equal(t, "check_out must be after check_in", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"bad request", failure.BadRequest(errors.New("guests is required")), http.StatusBadRequest, "guests is required"},
		{"bad request from string", failure.BadRequestFromString("invalid month"), http.StatusBadRequest, "invalid month"},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"not found", failure.NotFound("property not found"), http.StatusNotFound, "property not found"},
		{"conflict", failure.Conflict("property is not available"), http.StatusConflict, "property is not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure

			assert.True(t, errors.As(tt.err, &fail))
			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, fail.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))
	assert.Nil(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to create booking: %w", failure.Conflict("overlap"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.BadRequestFromString("invalid month")))
}

func TestKindHelpers(t *testing.T) {
	notFound := fmt.Errorf("wrap: %w", failure.NotFound("booking"))

	assert.True(t, failure.IsNotFound(notFound))
	assert.False(t, failure.IsConflict(notFound))
	assert.True(t, failure.IsConflict(failure.Conflict("x")))
	assert.True(t, failure.IsValidation(failure.BadRequestFromString("x")))
	assert.False(t, failure.IsValidation(errors.New("x")))
	assert.False(t, failure.IsConflict(nil))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"validation", failure.BadRequestFromString("guests must be at least 1"), failure.KindValidation},
		{"not found", fmt.Errorf("resolve: %w", failure.NotFound("property not found")), failure.KindNotFound},
		{"conflict", failure.Conflict("property is already booked"), failure.KindConflict},
		{"internal failure", failure.InternalError(errors.New("boom")), failure.KindInternal},
		{"plain error", errors.New("connection reset"), failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.KindOf(tt.err))
		})
	}
}

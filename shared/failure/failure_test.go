package failure_test

import (
	"errors"
	"fmt"
	"hotelops/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
		wantMsg    string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("invalid date \"2026-13-01\"")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid date \"2026-13-01\"",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("check_out_date is required"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "check_out_date is required",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("Missing authorization header"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Missing authorization header",
		},
		{
			name:     "not found",
			err:      failure.NotFound("room"),
			wantCode: http.StatusNotFound,
			wantMsg:  "room",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room number 101 already exists"),
			wantCode: http.StatusConflict,
			wantMsg:  "room number 101 already exists",
		},
		{
			name:       "rejected",
			err:        failure.Rejected("room_not_vacant", "Room 101 is occupied"),
			wantCode:   http.StatusUnprocessableEntity,
			wantReason: "room_not_vacant",
			wantMsg:    "Room 101 is occupied",
		},
		{
			name:       "date locked",
			err:        failure.DateLocked("Business date 2026-10-14 is closed"),
			wantCode:   http.StatusLocked,
			wantReason: failure.ReasonDateLocked,
			wantMsg:    "Business date 2026-10-14 is closed",
		},
		{
			name:       "concurrent modification",
			err:        failure.ConcurrentModification("Booking is being updated"),
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonConcurrentModification,
			wantMsg:    "Booking is being updated",
		},
		{
			name:     "forbidden role",
			err:      failure.ForbiddenError,
			wantCode: http.StatusForbidden,
			wantMsg:  failure.ForbiddenError.Message,
		},
		{
			name:     "other hotel",
			err:      failure.ResourceRestrictedError,
			wantCode: http.StatusForbidden,
			wantMsg:  failure.ResourceRestrictedError.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.wantMsg)
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantReason, failure.GetReason(tt.err))
			assert.True(t, failure.IsFailure(tt.err))
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestClassification(t *testing.T) {
	plain := errors.New("connection reset by peer")
	wrapped := fmt.Errorf("check-in: %w", failure.ConcurrentModification("Room is locked"))

	tests := []struct {
		name          string
		err           error
		wantCode      int
		wantFailure   bool
		wantRetryable bool
	}{
		{name: "infrastructure error", err: plain, wantCode: http.StatusInternalServerError},
		{name: "wrapped concurrent modification", err: wrapped, wantCode: http.StatusConflict, wantFailure: true, wantRetryable: true},
		{name: "rejection is final", err: failure.Rejected("invalid_transition", "x"), wantCode: http.StatusUnprocessableEntity, wantFailure: true},
		{name: "date lock is final", err: failure.DateLocked("x"), wantCode: http.StatusLocked, wantFailure: true},
		{name: "nil", err: nil, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantFailure, failure.IsFailure(tt.err))
			assert.Equal(t, tt.wantRetryable, failure.IsRetryable(tt.err))
		})
	}
}

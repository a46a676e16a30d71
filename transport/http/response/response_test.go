package response_test

import (
	"encoding/json"
	"errors"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		wantReason string
	}{
		{
			name:       "business rejection keeps its message and reason",
			err:        failure.Rejected("room_not_ready", "Room 101 is dirty"),
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Room 101 is dirty",
			wantReason: "room_not_ready",
		},
		{
			name:       "locked business date",
			err:        failure.DateLocked("Business date 2026-10-14 is closed"),
			wantStatus: http.StatusLocked,
			wantError:  "Business date 2026-10-14 is closed",
			wantReason: failure.ReasonDateLocked,
		},
		{
			name:       "infrastructure fault is hidden",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantError:  constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			var body struct {
				Error  string `json:"error"`
				Reason string `json:"reason"`
			}

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantReason, body.Reason)
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"reference": "BK-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"reference":"BK-1"}}`, rec.Body.String())
}

package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	otelMocks "hotelops/infras/otel/mocks"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/internal/domains/booking/service/mocks"
	"hotelops/internal/handlers/booking"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockBooking) http.Handler {
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1/hotels/{hotelID}", func(r chi.Router) {
		handler.Router(r)
	})

	return router
}

func TestCheckOut(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(svc *mocks.MockBooking)
		wantStatus int
		wantReason string
	}{
		{
			name: "checked out",
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().CheckOut(gomock.Any(), "hotel-1", "booking-1", "user-1").
					Return(dto.BookingResponse{ID: "booking-1", Reference: "BK-1", Status: model.StatusCheckedOut}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "outstanding balance",
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().CheckOut(gomock.Any(), "hotel-1", "booking-1", "user-1").
					Return(dto.BookingResponse{}, failure.Rejected(model.ReasonOutstandingBalance, "Outstanding balance of 50.00 must be settled"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantReason: model.ReasonOutstandingBalance,
		},
		{
			name: "store failure",
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().CheckOut(gomock.Any(), "hotel-1", "booking-1", "user-1").
					Return(dto.BookingResponse{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBooking(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/hotels/hotel-1/bookings/booking-1/check-out", nil)
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "user-1"))
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Reason string `json:"reason"`
			}

			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantReason, body.Reason)
		})
	}
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBooking(ctrl)

	body := strings.NewReader(`{"guest_name":"","check_in_date":"2026-03-15","check_out_date":"2026-03-17"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/hotels/hotel-1/bookings/", body)
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancel_WithoutBodyActsAsSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBooking(ctrl)

	svc.EXPECT().Cancel(gomock.Any(), "hotel-1", "booking-1", constant.SystemActor, dto.CancelBookingRequest{}).
		Return(dto.BookingResponse{ID: "booking-1", Status: model.StatusCancelled}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/hotels/hotel-1/bookings/booking-1/cancel", nil)
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

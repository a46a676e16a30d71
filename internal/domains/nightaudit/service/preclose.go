package service

import (
	"context"
	"fmt"
	bookingModel "hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/nightaudit/model"
	restaurantModel "hotelops/internal/domains/restaurant/model"
	"hotelops/shared"
	gDto "hotelops/shared/dto"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type inHouseBooking struct {
	ID        string
	Reference string
	RoomID    string
}

func (s *serviceImpl) bookingsTx(ctx context.Context, tx *sqlx.Tx, hotelID string, filters ...any) ([]bookingModel.Booking, error) {
	params := gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + bookingModel.FieldCheckInDate,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.bookingRepo.GetAllTx(ctx, tx, params, shared.FilterByHotel(hotelID, bookingModel.TableName, filters...))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get bookings for night audit")

		return nil, fmt.Errorf("failed to get bookings for night audit: %w", err)
	}

	return bookings, nil
}

// precloseTx collects the warnings attached to a run. They never block the close.
func (s *serviceImpl) precloseTx(ctx context.Context, tx *sqlx.Tx, hotelID string, date time.Time) (model.Summary, []inHouseBooking, error) {
	var summary model.Summary

	checkedIn, err := s.bookingsTx(ctx, tx, hotelID,
		gDto.Filter{Field: bookingModel.FieldStatus, Value: bookingModel.StatusCheckedIn, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
	)
	if err != nil {
		return summary, nil, err
	}

	arrivals, err := s.bookingsTx(ctx, tx, hotelID,
		gDto.Filter{Field: bookingModel.FieldStatus, Value: bookingModel.StatusReserved, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
		gDto.Filter{Field: bookingModel.FieldCheckInDate, Value: date, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
	)
	if err != nil {
		return summary, nil, err
	}

	pending, err := s.orderRepo.CountTx(ctx, tx, shared.FilterByHotel(hotelID, restaurantModel.TableName,
		gDto.Filter{Field: restaurantModel.FieldStatus, Value: restaurantModel.PendingStatuses, Operator: gDto.FilterOperatorIn, Table: restaurantModel.TableName},
	))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to count pending restaurant orders")

		return summary, nil, fmt.Errorf("failed to count pending restaurant orders: %w", err)
	}

	summary.CheckedInGuests = len(checkedIn)
	summary.PendingOrders = pending
	summary.OutstandingBalances = []model.OutstandingBalance{}
	summary.Warnings = []string{}
	summary.Errors = []model.PostingError{}

	for _, booking := range slices.Concat(checkedIn, arrivals) {
		if !booking.Balance.IsPositive() {
			continue
		}

		summary.OutstandingBalances = append(summary.OutstandingBalances, model.OutstandingBalance{
			BookingID: booking.ID,
			Reference: booking.Reference,
			GuestName: booking.GuestName,
			Balance:   booking.Balance,
		})
	}

	if n := len(summary.OutstandingBalances); n > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("%d bookings have outstanding balance", n))
	}

	if pending > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("%d restaurant orders still pending", pending))
	}

	if n := len(checkedIn); n > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("%d guests still checked in", n))
	}

	if n := len(arrivals); n > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf("%d arrivals have not checked in", n))
	}

	inHouse := make([]inHouseBooking, len(checkedIn))
	for i, booking := range checkedIn {
		inHouse[i] = inHouseBooking{ID: booking.ID, Reference: booking.Reference}

		if booking.RoomID != nil {
			inHouse[i].RoomID = *booking.RoomID
		}
	}

	return summary, inHouse, nil
}

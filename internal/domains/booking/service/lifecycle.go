package service

import (
	"context"
	"fmt"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	ledgerModel "hotelops/internal/domains/ledger/model"
	notificationModel "hotelops/internal/domains/notification/model"
	roomModel "hotelops/internal/domains/room/model"
	roomDto "hotelops/internal/domains/room/model/dto"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const defaultAdults = 1

// ensureAvailableTx rejects a stay that overlaps an active booking of the room over [checkIn, checkOut).
func (s *serviceImpl) ensureAvailableTx(ctx context.Context, tx *sqlx.Tx, hotelID, roomID string, checkIn, checkOut time.Time, excludeID string) error {
	filters := []any{
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: []model.Status{model.StatusReserved, model.StatusCheckedIn}, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.Filter{ArgName: "overlap_until", Field: model.FieldCheckInDate, Value: checkOut.AddDate(0, 0, -1), Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		gDto.Filter{ArgName: "overlap_from", Field: model.FieldCheckOutDate, Value: checkIn.AddDate(0, 0, 1), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	exist, err := s.repo.ExistTx(ctx, tx, shared.FilterByHotel(hotelID, model.TableName, filters...))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check overlapping bookings")

		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if exist {
		return failure.Rejected(model.ReasonOverlap, fmt.Sprintf("Room is already booked between %s and %s", timezone.FormatDate(checkIn), timezone.FormatDate(checkOut))) //nolint:wrapcheck
	}

	return nil
}

// resolveGuestTx reuses a guest known by email, then by phone, before creating one.
func (s *serviceImpl) resolveGuestTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, req dto.CreateBookingRequest) (model.Guest, error) {
	lookups := []struct {
		field string
		value string
	}{
		{field: model.FieldEmail, value: req.GuestEmail},
		{field: model.FieldPhone, value: req.GuestPhone},
	}

	for _, lookup := range lookups {
		if lookup.value == constant.Empty {
			continue
		}

		guest, err := s.guestRepo.GetTx(ctx, tx, shared.FilterByHotelAndID(hotelID, lookup.value, lookup.field, model.GuestTableName))
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to look up guest")

			return guest, fmt.Errorf("failed to look up guest: %w", err)
		}

		if guest.ID != constant.Empty {
			return guest, nil
		}
	}

	guest := model.Guest{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		FullName: req.GuestName,
		Email:    req.GuestEmail,
		Phone:    req.GuestPhone,
		Metadata: gModel.NewMetadata(timezone.Now(), actor),
	}

	if err := s.guestRepo.InsertTx(ctx, tx, guest); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create guest")

		return guest, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

// Create reserves a stay. The room's physical status is left untouched.
func (s *serviceImpl) Create(ctx context.Context, hotelID, actor string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelHotelAttributeKey, hotelID)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		today := businessDate.Current()
		if checkIn.Before(today) {
			return nil, failure.Rejected(model.ReasonInvalidDates, fmt.Sprintf("Check-in date %s is before the business date %s", timezone.FormatDate(checkIn), timezone.FormatDate(today))) //nolint:wrapcheck
		}

		roomTypeID := req.RoomTypeID

		var roomID *string

		if req.RoomID != constant.Empty {
			room, err := s.room.LockTx(ctx, tx, hotelID, req.RoomID)
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			if err = s.ensureAvailableTx(ctx, tx, hotelID, room.ID, checkIn, checkOut, constant.Empty); err != nil {
				return nil, err
			}

			roomTypeID = room.RoomTypeID
			roomID = &room.ID
		}

		roomType, err := s.room.GetTypeTx(ctx, tx, hotelID, roomTypeID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		guest, err := s.resolveGuestTx(ctx, tx, hotelID, actor, req)
		if err != nil {
			return nil, err
		}

		rate := req.NightlyRate
		if !rate.IsPositive() {
			rate = roomType.BasePrice
		}

		source := req.Source
		if source == constant.Empty {
			source = model.SourceFrontDesk
		}

		adults := req.Adults
		if adults == 0 {
			adults = defaultAdults
		}

		nights := model.Nights(checkIn, checkOut)
		total := model.StayTotal(rate, nights)
		now := timezone.Now()

		booking = model.Booking{
			ID:              uuid.NewString(),
			HotelID:         hotelID,
			GuestID:         guest.ID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			RoomID:          roomID,
			RoomTypeID:      roomTypeID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			Nights:          nights,
			Adults:          adults,
			Status:          model.StatusReserved,
			NightlyRate:     rate,
			TotalAmount:     total,
			AmountPaid:      decimal.Zero,
			Balance:         total,
			CancellationFee: decimal.Zero,
			Source:          source,
			Reference:       model.NewReference(s.cfg.Policy.WithDefaults().BookingReferencePrefix, today),
			SpecialRequests: req.SpecialRequests,
			Metadata:        gModel.NewMetadata(now, actor),
		}

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create booking")

			return nil, fmt.Errorf("failed to create booking: %w", err)
		}

		invoice := model.Invoice{
			ID:            uuid.NewString(),
			HotelID:       hotelID,
			BookingID:     booking.ID,
			InvoiceNumber: model.InvoiceNumber(booking.Reference),
			Total:         total,
			AmountPaid:    decimal.Zero,
			Status:        model.InvoiceStatusUnpaid,
			Metadata:      gModel.NewMetadata(now, actor),
		}

		if err = s.invoiceRepo.InsertTx(ctx, tx, invoice); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to create invoice")

			return nil, fmt.Errorf("failed to create invoice: %w", err)
		}

		description := fmt.Sprintf("Room charges: %d night(s) at %s", nights, rate.StringFixed(2))
		if err = s.addLineTx(ctx, tx, invoice, description, total, model.LineKindRoomCharge, actor); err != nil {
			return nil, err
		}

		if total.IsPositive() {
			if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.BookingCharge(today, booking.Reference, total)); err != nil {
				return nil, err //nolint:wrapcheck
			}
		}

		return nil, nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", booking.ID).Str("reference", booking.Reference).Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

// AssignRoom puts a reserved booking in a specific room under the same overlap rule as Create.
func (s *serviceImpl) AssignRoom(ctx context.Context, hotelID, id, actor string, req dto.AssignRoomRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AssignRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, _ businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		if booking.Status != model.StatusReserved {
			return nil, failure.Rejected(model.ReasonInvalidTransition, fmt.Sprintf("Cannot assign a room to a %s booking", booking.Status)) //nolint:wrapcheck
		}

		room, err := s.room.LockTx(ctx, tx, hotelID, req.RoomID)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if err = s.ensureAvailableTx(ctx, tx, hotelID, room.ID, booking.CheckInDate, booking.CheckOutDate, booking.ID); err != nil {
			return nil, err
		}

		fields := shared.Touch(map[string]any{
			model.FieldRoomID:     room.ID,
			model.FieldRoomTypeID: room.RoomTypeID,
		}, actor)

		if err = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, id)); err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to assign room")

			return nil, fmt.Errorf("failed to assign room: %w", err)
		}

		booking.RoomID = &room.ID
		booking.RoomTypeID = room.RoomTypeID

		return nil, nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// CheckIn moves the guest in. The booking and the room change together or not at all.
func (s *serviceImpl) CheckIn(ctx context.Context, hotelID, id, actor string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, _ businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		if err = model.ValidateTransition(booking.Status, model.StatusCheckedIn); err != nil {
			return nil, err //nolint:wrapcheck
		}

		roomID := booking.AssignedRoom()
		if roomID == constant.Empty {
			return nil, failure.Rejected(model.ReasonRoomNotAssigned, "Assign a room before check-in") //nolint:wrapcheck
		}

		if _, err = s.room.EnsureCheckInReadyTx(ctx, tx, hotelID, roomID); err != nil {
			return nil, err //nolint:wrapcheck
		}

		notifications, err := s.room.ChangeStatusTx(ctx, tx, hotelID, roomID, actor, roomDto.ChangeStatusRequest{
			Status: roomModel.StatusOccupied,
			Reason: "Guest checked in: " + booking.Reference,
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		now := timezone.Now()
		fields := shared.Touch(map[string]any{
			model.FieldStatus:        model.StatusCheckedIn,
			model.FieldActualCheckIn: now,
		}, actor)

		if err = s.repo.UpdateTx(ctx, tx, fields, byHotelAndID(hotelID, id)); err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to check in booking")

			return nil, fmt.Errorf("failed to check in booking: %w", err)
		}

		booking.Status = model.StatusCheckedIn
		booking.ActualCheckIn = &now

		return notifications, nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("actor", actor).Msg("guest checked in")

	res.FromModel(booking)

	return res, nil
}

// CheckOut releases the room for cleaning once the folio is settled.
func (s *serviceImpl) CheckOut(ctx context.Context, hotelID, id, actor string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, _ businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		if err = model.ValidateTransition(booking.Status, model.StatusCheckedOut); err != nil {
			return nil, err //nolint:wrapcheck
		}

		invoice, err := s.lockInvoiceTx(ctx, tx, booking)
		if err != nil {
			return nil, err
		}

		paid, err := s.paidTx(ctx, tx, booking.ID)
		if err != nil {
			return nil, err
		}

		booking.AmountPaid = paid
		booking.RecomputeBalance()

		if booking.Balance.IsPositive() {
			return nil, failure.Rejected(model.ReasonOutstandingBalance, fmt.Sprintf("Outstanding balance of %s must be settled before check-out", booking.Balance.StringFixed(2))) //nolint:wrapcheck
		}

		notifications, err := s.releaseRoomTx(ctx, tx, booking, actor, "Guest checked out: "+booking.Reference, true)
		if err != nil {
			return nil, err
		}

		now := timezone.Now()
		booking.Status = model.StatusCheckedOut
		booking.ActualCheckOut = &now

		err = s.syncTx(ctx, tx, &booking, invoice, actor, map[string]any{
			model.FieldStatus:         model.StatusCheckedOut,
			model.FieldActualCheckOut: now,
		})
		if err != nil {
			return nil, err
		}

		return notifications, nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("actor", actor).Msg("guest checked out")

	res.FromModel(booking)

	return res, nil
}

// releaseRoomTx hands the booking's room back. On checkout it always goes to Dirty; on cancellation
// it is touched only when it was left physically Occupied.
func (s *serviceImpl) releaseRoomTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking, actor, reason string, checkout bool) ([]notificationModel.Notification, error) {
	roomID := booking.AssignedRoom()
	if roomID == constant.Empty {
		return nil, nil
	}

	room, err := s.room.LockTx(ctx, tx, booking.HotelID, roomID)
	if failure.GetReason(err) == roomModel.ReasonRoomInactive && !checkout {
		return nil, nil
	}

	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if room.Status == roomModel.StatusDirty || (!checkout && room.Status != roomModel.StatusOccupied) {
		return nil, nil
	}

	return s.room.ChangeStatusTx(ctx, tx, booking.HotelID, roomID, actor, roomDto.ChangeStatusRequest{ //nolint:wrapcheck
		Status: roomModel.StatusDirty,
		Reason: reason,
	})
}

// Cancel closes a reserved booking and charges the tiered cancellation fee.
func (s *serviceImpl) Cancel(ctx context.Context, hotelID, id, actor string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		if err = model.ValidateTransition(booking.Status, model.StatusCancelled); err != nil {
			return nil, err //nolint:wrapcheck
		}

		daysBefore := timezone.DaysBetween(businessDate.Current(), booking.CheckInDate)
		fee := model.CancellationFee(s.cfg.Policy.WithDefaults(), booking.TotalAmount, daysBefore)

		reason := req.Reason
		if reason == constant.Empty {
			reason = "Cancelled by " + actor
		}

		return s.closeTx(ctx, tx, businessDate, &booking, closing{
			status:  model.StatusCancelled,
			fee:     fee,
			source:  ledgerModel.SourceCancellationFee,
			kind:    model.LineKindCancellationFee,
			label:   fmt.Sprintf("Cancellation fee (%d day(s) before check-in)", max(daysBefore, 0)),
			reason:  reason,
			actor:   actor,
			release: "Booking cancelled: " + booking.Reference,
		})
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("fee", booking.CancellationFee.String()).Msg("booking cancelled")

	res.FromModel(booking)

	return res, nil
}

// MarkNoShow closes a reserved booking whose arrival date has passed and charges the no-show fee.
func (s *serviceImpl) MarkNoShow(ctx context.Context, hotelID, id, actor string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		if err = model.ValidateTransition(booking.Status, model.StatusNoShow); err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !businessDate.Current().After(timezone.Date(booking.CheckInDate)) {
			return nil, failure.Rejected(model.ReasonNoShowTooEarly, "Cannot mark as no-show before the check-in date has passed") //nolint:wrapcheck
		}

		policy := s.cfg.Policy.WithDefaults()
		fee := model.NoShowFee(policy, booking.TotalAmount, booking.Nights)

		return s.closeTx(ctx, tx, businessDate, &booking, closing{
			status:  model.StatusNoShow,
			fee:     fee,
			source:  ledgerModel.SourceNoShowFee,
			kind:    model.LineKindNoShowFee,
			label:   fmt.Sprintf("No-show fee (%d night(s))", min(policy.NoShowNights, booking.Nights)),
			reason:  "Guest did not arrive",
			actor:   actor,
			release: "Booking no-show: " + booking.Reference,
		})
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("fee", booking.CancellationFee.String()).Msg("booking marked no-show")

	res.FromModel(booking)

	return res, nil
}

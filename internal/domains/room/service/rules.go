package service

import (
	"context"
	"fmt"
	bookingModel "hotelops/internal/domains/booking/model"
	housekeepingModel "hotelops/internal/domains/housekeeping/model"
	maintenanceModel "hotelops/internal/domains/maintenance/model"
	restaurantModel "hotelops/internal/domains/restaurant/model"
	"hotelops/internal/domains/room/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// rule inspects a requested transition. It returns a rejection, an infrastructure error, or nil.
type rule struct {
	name  string
	check func(ctx context.Context, tx *sqlx.Tx, t model.Transition) error
}

// rules run in order; the first rejection wins.
func (s *serviceImpl) rules() []rule {
	return []rule{
		{name: "transition", check: checkTransition},
		{name: "booking", check: s.checkBookingConflict},
		{name: "housekeeping", check: s.checkHousekeepingConflict},
		{name: "room_service", check: s.checkRoomServiceConflict},
		{name: "maintenance", check: s.checkMaintenanceConflict},
	}
}

func (s *serviceImpl) evaluate(ctx context.Context, tx *sqlx.Tx, t model.Transition) error {
	for _, r := range s.rules() {
		if err := r.check(ctx, tx, t); err != nil {
			log.Info().Err(err).Str("rule", r.name).Str("room_id", t.Room.ID).Msg("room transition refused")

			return err
		}
	}

	return nil
}

func checkTransition(_ context.Context, _ *sqlx.Tx, t model.Transition) error {
	return model.ValidateTransition(t.From(), t.To)
}

func roomFilter(t model.Transition, table string, filters ...any) gDto.FilterGroup {
	return shared.FilterByHotel(t.Room.HotelID, table, append([]any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    t.Room.ID,
			Operator: gDto.FilterOperatorEq,
			Table:    table,
		},
	}, filters...)...)
}

// checkBookingConflict keeps a room sellable when a reserved guest arrives within the look-ahead window.
// The business date is read under tx so night audit cannot move it mid-check.
func (s *serviceImpl) checkBookingConflict(ctx context.Context, tx *sqlx.Tx, t model.Transition) error {
	if t.To != model.StatusMaintenance {
		return nil
	}

	businessDate, err := s.businessDate.AcquireTx(ctx, tx, t.Room.HotelID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	today := businessDate.CurrentBusinessDate

	until := today.AddDate(0, 0, s.cfg.Policy.WithDefaults().MaintenanceConflictDays)

	filter := roomFilter(t, bookingModel.TableName,
		gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Value:    bookingModel.StatusReserved,
			Operator: gDto.FilterOperatorEq,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			ArgName:  "conflict_until",
			Field:    bookingModel.FieldCheckInDate,
			Value:    until,
			Operator: gDto.FilterOperatorLessEq,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			ArgName:  "conflict_from",
			Field:    bookingModel.FieldCheckOutDate,
			Value:    today,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    bookingModel.TableName,
		},
	)

	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  bookingModel.TableName + "." + bookingModel.FieldCheckInDate,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.bookingRepo.GetAllTx(ctx, tx, params, filter)
	if err != nil {
		return fmt.Errorf("failed to check upcoming bookings: %w", err)
	}

	if len(bookings) == 0 {
		return nil
	}

	days := max(timezone.DaysBetween(today, bookings[0].CheckInDate), 0)

	return failure.Rejected(model.ReasonBookingConflict, fmt.Sprintf("Room has upcoming booking in %d days (Guest: %s)", days, bookings[0].GuestName)) //nolint:wrapcheck
}

func (s *serviceImpl) checkHousekeepingConflict(ctx context.Context, tx *sqlx.Tx, t model.Transition) error {
	if t.To != model.StatusVacant {
		return nil
	}

	exist, err := s.taskRepo.ExistTx(ctx, tx, roomFilter(t, housekeepingModel.TableName, gDto.Filter{
		Field:    housekeepingModel.FieldStatus,
		Value:    housekeepingModel.StatusInProgress,
		Operator: gDto.FilterOperatorEq,
		Table:    housekeepingModel.TableName,
	}))
	if err != nil {
		return fmt.Errorf("failed to check cleaning tasks: %w", err)
	}

	if exist {
		return failure.Rejected(model.ReasonHousekeepingConflict, "Cleaning task in progress. Wait for completion.") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkRoomServiceConflict(ctx context.Context, tx *sqlx.Tx, t model.Transition) error {
	if t.To != model.StatusVacant {
		return nil
	}

	order, err := s.orderRepo.GetTx(ctx, tx, roomFilter(t, restaurantModel.TableName, gDto.Filter{
		Field:    restaurantModel.FieldStatus,
		Value:    restaurantModel.PendingStatuses,
		Operator: gDto.FilterOperatorIn,
		Table:    restaurantModel.TableName,
	}))
	if err != nil {
		return fmt.Errorf("failed to check room service orders: %w", err)
	}

	if order.ID != constant.Empty {
		return failure.Rejected(model.ReasonRoomServiceConflict, fmt.Sprintf("Pending room service order #%s. Complete or cancel first.", order.OrderNumber)) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkMaintenanceConflict(ctx context.Context, tx *sqlx.Tx, t model.Transition) error {
	if t.To != model.StatusVacant && t.To != model.StatusOccupied {
		return nil
	}

	issue, err := s.issueRepo.GetTx(ctx, tx, roomFilter(t, maintenanceModel.TableName,
		gDto.Filter{
			Field:    maintenanceModel.FieldStatus,
			Value:    maintenanceModel.OpenStatuses,
			Operator: gDto.FilterOperatorIn,
			Table:    maintenanceModel.TableName,
		},
		gDto.Filter{
			Field:    maintenanceModel.FieldPriority,
			Value:    maintenanceModel.PriorityCritical,
			Operator: gDto.FilterOperatorEq,
			Table:    maintenanceModel.TableName,
		},
	))
	if err != nil {
		return fmt.Errorf("failed to check maintenance issues: %w", err)
	}

	if issue.ID != constant.Empty {
		return failure.Rejected(model.ReasonMaintenanceConflict, "Critical maintenance issue open: "+issue.IssueType) //nolint:wrapcheck
	}

	return nil
}

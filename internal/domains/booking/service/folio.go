package service

import (
	"context"
	"fmt"
	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	businessDateModel "hotelops/internal/domains/businessdate/model"
	ledgerModel "hotelops/internal/domains/ledger/model"
	notificationModel "hotelops/internal/domains/notification/model"
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

func (s *serviceImpl) addLineTx(ctx context.Context, tx *sqlx.Tx, invoice model.Invoice, description string, amount decimal.Decimal, kind, actor string) error {
	line := model.InvoiceLine{
		ID:          uuid.NewString(),
		InvoiceID:   invoice.ID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Metadata:    gModel.NewMetadata(timezone.Now(), actor),
	}

	if err := s.lineRepo.InsertTx(ctx, tx, line); err != nil {
		log.Error().Err(err).Str("invoice_id", invoice.ID).Str("kind", kind).Msg("failed to add invoice line")

		return fmt.Errorf("failed to add invoice line: %w", err)
	}

	return nil
}

func (s *serviceImpl) addPaymentTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking, invoice model.Invoice, amount decimal.Decimal, method ledgerModel.PaymentMethod, reference, actor string, postedOn time.Time) error {
	payment := model.Payment{
		ID:        uuid.NewString(),
		HotelID:   booking.HotelID,
		InvoiceID: invoice.ID,
		BookingID: booking.ID,
		Amount:    amount,
		Method:    method,
		Reference: reference,
		PostedOn:  postedOn,
		Metadata:  gModel.NewMetadata(timezone.Now(), actor),
	}

	if err := s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to record payment")

		return fmt.Errorf("failed to record payment: %w", err)
	}

	return nil
}

func (s *serviceImpl) paidTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (decimal.Decimal, error) {
	paid, err := s.paymentRepo.SumTx(ctx, tx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to sum payments")

		return paid, fmt.Errorf("failed to sum payments: %w", err)
	}

	return paid, nil
}

// syncTx writes the booking money columns and the matching invoice totals together with any
// extra booking fields, keeping balance = total_amount - amount_paid.
func (s *serviceImpl) syncTx(ctx context.Context, tx *sqlx.Tx, booking *model.Booking, invoice model.Invoice, actor string, extra map[string]any) error {
	booking.RecomputeBalance()

	fields := map[string]any{
		model.FieldTotalAmount: booking.TotalAmount,
		model.FieldAmountPaid:  booking.AmountPaid,
		model.FieldBalance:     booking.Balance,
	}

	for k, v := range extra {
		fields[k] = v
	}

	if err := s.repo.UpdateTx(ctx, tx, shared.Touch(fields, actor), byHotelAndID(booking.HotelID, booking.ID)); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	invoiceFields := shared.Touch(map[string]any{
		model.FieldTotal:      booking.TotalAmount,
		model.FieldAmountPaid: booking.AmountPaid,
		model.FieldStatus:     model.InvoiceStatusOf(booking.TotalAmount, booking.AmountPaid),
	}, actor)

	if err := s.invoiceRepo.UpdateTx(ctx, tx, invoiceFields, shared.FilterByHotelAndID(booking.HotelID, invoice.ID, model.FieldID, model.InvoiceTableName)); err != nil {
		log.Error().Err(err).Str("invoice_id", invoice.ID).Msg("failed to update invoice")

		return fmt.Errorf("failed to update invoice: %w", err)
	}

	return nil
}

type closing struct {
	status  model.Status
	fee     decimal.Decimal
	source  string
	kind    string
	label   string
	reason  string
	actor   string
	release string
}

// closeTx voids the stay charges, keeps only the fee, and hands back anything paid above it.
func (s *serviceImpl) closeTx(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate, booking *model.Booking, c closing) ([]notificationModel.Notification, error) {
	today := businessDate.Current()

	invoice, err := s.lockInvoiceTx(ctx, tx, *booking)
	if err != nil {
		return nil, err
	}

	if booking.TotalAmount.IsPositive() {
		if _, err = s.ledger.PostTx(ctx, tx, booking.HotelID, c.actor, ledgerModel.ChargeVoid(today, booking.Reference, booking.TotalAmount)); err != nil {
			return nil, err //nolint:wrapcheck
		}

		if err = s.addLineTx(ctx, tx, invoice, "Room charges voided", booking.TotalAmount.Neg(), model.LineKindChargeVoid, c.actor); err != nil {
			return nil, err
		}
	}

	if c.fee.IsPositive() {
		if _, err = s.ledger.PostTx(ctx, tx, booking.HotelID, c.actor, ledgerModel.CancellationFee(today, booking.Reference, c.source, c.fee)); err != nil {
			return nil, err //nolint:wrapcheck
		}

		if err = s.addLineTx(ctx, tx, invoice, c.label, c.fee, c.kind, c.actor); err != nil {
			return nil, err
		}
	}

	booking.TotalAmount = c.fee

	paid, err := s.paidTx(ctx, tx, booking.ID)
	if err != nil {
		return nil, err
	}

	if excess := paid.Sub(c.fee); excess.IsPositive() {
		method, err := s.lastPaymentMethodTx(ctx, tx, *booking)
		if err != nil {
			return nil, err
		}

		if _, err = s.ledger.PostTx(ctx, tx, booking.HotelID, c.actor, ledgerModel.PaymentReversal(today, booking.Reference, method, excess)); err != nil {
			return nil, err //nolint:wrapcheck
		}

		if err = s.addPaymentTx(ctx, tx, *booking, invoice, excess.Neg(), method, "Refund on "+string(c.status), c.actor, today); err != nil {
			return nil, err
		}

		paid = c.fee
	}

	booking.AmountPaid = paid

	notifications, err := s.releaseRoomTx(ctx, tx, *booking, c.actor, c.release, false)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	booking.Status = c.status
	booking.CancellationFee = c.fee
	booking.CancellationReason = c.reason
	booking.CancelledAt = &now

	err = s.syncTx(ctx, tx, booking, invoice, c.actor, map[string]any{
		model.FieldStatus:             c.status,
		model.FieldCancellationFee:    c.fee,
		model.FieldCancellationReason: c.reason,
		model.FieldCancelledAt:        now,
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// lastPaymentMethodTx returns the method of the latest money received, falling back to cash.
func (s *serviceImpl) lastPaymentMethodTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (ledgerModel.PaymentMethod, error) {
	payments, err := s.paymentRepo.GetAllTx(ctx, tx, gDto.QueryParams{
		Limit:   1,
		SortBy:  model.PaymentTableName + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, shared.FilterByHotelAndID(booking.HotelID, booking.ID, model.FieldBookingID, model.PaymentTableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to get payments")

		return constant.Empty, fmt.Errorf("failed to get payments: %w", err)
	}

	if len(payments) == 0 {
		return ledgerModel.PaymentMethodCash, nil
	}

	return payments[0].Method, nil
}

// RecordPayment takes money against the folio. A back-dated payment must land on an open date.
func (s *serviceImpl) RecordPayment(ctx context.Context, hotelID, id, actor string, req dto.PaymentRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		postedOn := businessDate.Current()

		if req.PostedOn != constant.Empty {
			postedOn, err = timezone.ParseDate(req.PostedOn)
			if err != nil {
				return nil, failure.BadRequest(err) //nolint:wrapcheck
			}

			if err = s.businessDate.EnsureOpen(businessDate, postedOn); err != nil {
				return nil, err //nolint:wrapcheck
			}
		}

		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		invoice, err := s.lockInvoiceTx(ctx, tx, booking)
		if err != nil {
			return nil, err
		}

		if err = s.addPaymentTx(ctx, tx, booking, invoice, req.Amount, req.Method, req.Reference, actor, postedOn); err != nil {
			return nil, err
		}

		if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.PaymentReceived(postedOn, booking.Reference, req.Method, req.Amount)); err != nil {
			return nil, err //nolint:wrapcheck
		}

		booking.AmountPaid, err = s.paidTx(ctx, tx, booking.ID)
		if err != nil {
			return nil, err
		}

		return nil, s.syncTx(ctx, tx, &booking, invoice, actor, nil)
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("amount", req.Amount.String()).Msg("payment recorded")

	res.FromModel(booking)

	return res, nil
}

// Refund returns money to the guest. Money paid beyond the folio total goes back first as a
// payment reversal; the rest is an allowance against revenue, so the balance owed does not move.
func (s *serviceImpl) Refund(ctx context.Context, hotelID, id, actor string, req dto.RefundRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Refund")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelBookingAttributeKey, id)

	var booking model.Booking

	err = s.run(ctx, hotelID, func(ctx context.Context, tx *sqlx.Tx, businessDate businessDateModel.BusinessDate) ([]notificationModel.Notification, error) {
		booking, err = s.lockTx(ctx, tx, hotelID, id)
		if err != nil {
			return nil, err
		}

		invoice, err := s.lockInvoiceTx(ctx, tx, booking)
		if err != nil {
			return nil, err
		}

		paid, err := s.paidTx(ctx, tx, booking.ID)
		if err != nil {
			return nil, err
		}

		if req.Amount.GreaterThan(paid) {
			return nil, failure.Rejected(model.ReasonRefundExceedsPaid, fmt.Sprintf("Refund of %s exceeds the %s paid", req.Amount.StringFixed(2), paid.StringFixed(2))) //nolint:wrapcheck
		}

		today := businessDate.Current()
		overpaid, allowance := splitRefund(req.Amount, paid, booking.TotalAmount)

		if overpaid.IsPositive() {
			if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.PaymentReversal(today, booking.Reference, req.Method, overpaid)); err != nil {
				return nil, err //nolint:wrapcheck
			}
		}

		if allowance.IsPositive() {
			if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.Refund(today, booking.Reference, req.Method, allowance)); err != nil {
				return nil, err //nolint:wrapcheck
			}

			if err = s.addLineTx(ctx, tx, invoice, "Refund: "+req.Reason, allowance.Neg(), model.LineKindAllowance, actor); err != nil {
				return nil, err
			}
		}

		if err = s.addPaymentTx(ctx, tx, booking, invoice, req.Amount.Neg(), req.Method, req.Reason, actor, today); err != nil {
			return nil, err
		}

		booking.TotalAmount = booking.TotalAmount.Sub(allowance)
		booking.AmountPaid = paid.Sub(req.Amount)

		return nil, s.syncTx(ctx, tx, &booking, invoice, actor, nil)
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("hotel_id", hotelID).Str("booking_id", id).Str("amount", req.Amount.String()).Msg("refund issued")

	res.FromModel(booking)

	return res, nil
}

// splitRefund divides a refund into the part that returns an overpayment and the allowance part.
func splitRefund(amount, paid, total decimal.Decimal) (overpaid, allowance decimal.Decimal) {
	overpaid = decimal.Min(amount, decimal.Max(paid.Sub(total), decimal.Zero))

	return overpaid, amount.Sub(overpaid)
}

// InHouseTx finds the booking currently checked in to the room.
func (s *serviceImpl) InHouseTx(ctx context.Context, tx *sqlx.Tx, hotelID, roomID string) (model.Booking, error) {
	booking, err := s.repo.GetTx(ctx, tx, shared.FilterByHotel(hotelID, model.TableName,
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusCheckedIn, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get in-house booking")

		return booking, fmt.Errorf("failed to get in-house booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.Rejected(model.ReasonNotInHouse, "No guest is checked in to this room") //nolint:wrapcheck
	}

	return booking, nil
}

// AddChargeTx posts an extra charge to an in-house guest's folio. The caller owns the ledger entry.
func (s *serviceImpl) AddChargeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, charge model.Charge) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AddChargeTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.lockTx(ctx, tx, hotelID, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusCheckedIn {
		return res, failure.Rejected(model.ReasonNotInHouse, "Charges can only be added to a checked-in booking") //nolint:wrapcheck
	}

	invoice, err := s.lockInvoiceTx(ctx, tx, booking)
	if err != nil {
		return res, err
	}

	if err = s.addLineTx(ctx, tx, invoice, charge.Description, charge.Amount, charge.Kind, actor); err != nil {
		return res, err
	}

	booking.TotalAmount = booking.TotalAmount.Add(charge.Amount)

	booking.AmountPaid, err = s.paidTx(ctx, tx, booking.ID)
	if err != nil {
		return res, err
	}

	if err = s.syncTx(ctx, tx, &booking, invoice, actor, nil); err != nil {
		return res, err
	}

	return booking, nil
}

// PostNightlyChargeTx accrues one night of room revenue for an in-house booking.
func (s *serviceImpl) PostNightlyChargeTx(ctx context.Context, tx *sqlx.Tx, hotelID, id, actor string, date time.Time) (res decimal.Decimal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.PostNightlyChargeTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.lockTx(ctx, tx, hotelID, id)
	if err != nil {
		return res, err
	}

	if !booking.NightlyRate.IsPositive() {
		return decimal.Zero, nil
	}

	if _, err = s.ledger.PostTx(ctx, tx, hotelID, actor, ledgerModel.RoomRevenueAccrual(date, booking.Reference, booking.NightlyRate)); err != nil {
		return res, err //nolint:wrapcheck
	}

	_, err = s.AddChargeTx(ctx, tx, hotelID, id, actor, model.Charge{
		Description: "Room charge for " + timezone.FormatDate(date),
		Amount:      booking.NightlyRate,
		Kind:        model.LineKindNightAudit,
	})
	if err != nil {
		return res, err
	}

	return booking.NightlyRate, nil
}

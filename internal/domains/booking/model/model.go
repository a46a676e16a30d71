package model

import (
	"fmt"
	ledgerModel "hotelops/internal/domains/ledger/model"
	"hotelops/shared/failure"
	"hotelops/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName            = "bookings"
	EntityName           = "booking"
	GuestTableName       = "guests"
	GuestEntityName      = "guest"
	InvoiceTableName     = "invoices"
	InvoiceEntityName    = "invoice"
	InvoiceLineTableName = "invoice_lines"
	PaymentTableName     = "payments"
	PaymentEntityName    = "payment"

	FieldID                 = "id"
	FieldHotelID            = "hotel_id"
	FieldGuestID            = "guest_id"
	FieldGuestName          = "guest_name"
	FieldRoomID             = "room_id"
	FieldRoomTypeID         = "room_type_id"
	FieldCheckInDate        = "check_in_date"
	FieldCheckOutDate       = "check_out_date"
	FieldStatus             = "status"
	FieldNightlyRate        = "nightly_rate"
	FieldTotalAmount        = "total_amount"
	FieldAmountPaid         = "amount_paid"
	FieldBalance            = "balance"
	FieldReference          = "reference"
	FieldSource             = "source"
	FieldActualCheckIn      = "actual_check_in"
	FieldActualCheckOut     = "actual_check_out"
	FieldCancellationFee    = "cancellation_fee"
	FieldCancellationReason = "cancellation_reason"
	FieldCancelledAt        = "cancelled_at"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldBookingID          = "booking_id"
	FieldInvoiceID          = "invoice_id"
	FieldTotal              = "total"
	FieldCreatedAt          = "created_at"
)

// Rejection reasons.
const (
	ReasonInvalidTransition  = "invalid_booking_transition"
	ReasonOverlap            = "booking_overlap"
	ReasonInvalidDates       = "invalid_dates"
	ReasonOutstandingBalance = "outstanding_balance"
	ReasonRoomNotAssigned    = "room_not_assigned"
	ReasonNoShowTooEarly     = "no_show_too_early"
	ReasonRefundExceedsPaid  = "refund_exceeds_paid"
	ReasonNotInHouse         = "booking_not_in_house"
)

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

var transitions = map[Status][]Status{
	StatusReserved:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCheckedOut},
}

// ValidateTransition rejects same-state moves and every edge the lifecycle does not allow.
func ValidateTransition(from, to Status) error {
	if from == to {
		return failure.Rejected(ReasonInvalidTransition, fmt.Sprintf("booking is already %s", from)) //nolint:wrapcheck
	}

	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}

	return failure.Rejected(ReasonInvalidTransition, fmt.Sprintf("cannot move booking from %s to %s", from, to)) //nolint:wrapcheck
}

// IsActive reports whether the booking still holds its room.
func (s Status) IsActive() bool {
	return s == StatusReserved || s == StatusCheckedIn
}

type Booking struct {
	ID                 string          `db:"id"`
	HotelID            string          `db:"hotel_id"`
	GuestID            string          `db:"guest_id"`
	GuestName          string          `db:"guest_name"`
	GuestEmail         string          `db:"guest_email"`
	GuestPhone         string          `db:"guest_phone"`
	RoomID             *string         `db:"room_id"`
	RoomTypeID         string          `db:"room_type_id"`
	CheckInDate        time.Time       `db:"check_in_date"`
	CheckOutDate       time.Time       `db:"check_out_date"`
	Nights             int             `db:"nights"`
	Adults             int             `db:"adults"`
	Status             Status          `db:"status"`
	NightlyRate        decimal.Decimal `db:"nightly_rate"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	AmountPaid         decimal.Decimal `db:"amount_paid"`
	Balance            decimal.Decimal `db:"balance"`
	CancellationFee    decimal.Decimal `db:"cancellation_fee"`
	CancellationReason string          `db:"cancellation_reason"`
	Source             Source          `db:"source"`
	Reference          string          `db:"reference"`
	SpecialRequests    string          `db:"special_requests"`
	ActualCheckIn      *time.Time      `db:"actual_check_in"`
	ActualCheckOut     *time.Time      `db:"actual_check_out"`
	CancelledAt        *time.Time      `db:"cancelled_at"`
	model.Metadata
}

// RecomputeBalance restores balance = total_amount - amount_paid.
func (b *Booking) RecomputeBalance() {
	b.Balance = b.TotalAmount.Sub(b.AmountPaid)
}

// AssignedRoom returns the room id or an empty string while unassigned.
func (b Booking) AssignedRoom() string {
	if b.RoomID == nil {
		return ""
	}

	return *b.RoomID
}

type Guest struct {
	ID       string `db:"id"`
	HotelID  string `db:"hotel_id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	model.Metadata
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid        InvoiceStatus = "unpaid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
)

// InvoiceStatusOf derives the invoice status from what was paid against its total. Overpaid is paid.
func InvoiceStatusOf(total, paid decimal.Decimal) InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return InvoiceStatusPaid
	case paid.IsPositive():
		return InvoiceStatusPartiallyPaid
	default:
		return InvoiceStatusUnpaid
	}
}

type Invoice struct {
	ID            string          `db:"id"`
	HotelID       string          `db:"hotel_id"`
	BookingID     string          `db:"booking_id"`
	InvoiceNumber string          `db:"invoice_number"`
	Total         decimal.Decimal `db:"total"`
	AmountPaid    decimal.Decimal `db:"amount_paid"`
	Status        InvoiceStatus   `db:"status"`
	model.Metadata
}

// Invoice line kinds.
const (
	LineKindRoomCharge      = "room_charge"
	LineKindNightAudit      = "night_audit"
	LineKindChargeVoid      = "charge_void"
	LineKindCancellationFee = "cancellation_fee"
	LineKindNoShowFee       = "no_show_fee"
	LineKindAllowance       = "allowance"
	LineKindRestaurant      = "restaurant"
)

type InvoiceLine struct {
	ID          string          `db:"id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Kind        string          `db:"kind"`
	model.Metadata
}

// Payment is money received against an invoice. Refunds are stored as negative amounts.
type Payment struct {
	ID        string                    `db:"id"`
	HotelID   string                    `db:"hotel_id"`
	InvoiceID string                    `db:"invoice_id"`
	BookingID string                    `db:"booking_id"`
	Amount    decimal.Decimal           `db:"amount"`
	Method    ledgerModel.PaymentMethod `db:"method"`
	Reference string                    `db:"reference"`
	PostedOn  time.Time                 `db:"posted_on"`
	model.Metadata
}

// Charge is an amount added to an in-house guest's folio after booking.
type Charge struct {
	Description string
	Amount      decimal.Decimal
	Kind        string
}

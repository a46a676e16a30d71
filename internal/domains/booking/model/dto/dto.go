package dto

import (
	"hotelops/internal/domains/booking/model"
	ledgerModel "hotelops/internal/domains/ledger/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestName       string          `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string          `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string          `json:"guest_phone"      validate:"omitempty,max=20"`
	RoomID          string          `json:"room_id"          validate:"required_without=RoomTypeID,omitempty,uuid"`
	RoomTypeID      string          `json:"room_type_id"     validate:"required_without=RoomID,omitempty,uuid"`
	CheckInDate     string          `json:"check_in_date"    validate:"required,datetime=2006-01-02"`
	CheckOutDate    string          `json:"check_out_date"   validate:"required,datetime=2006-01-02"`
	Adults          int             `json:"adults"           validate:"omitempty,min=1,max=20"`
	NightlyRate     decimal.Decimal `json:"nightly_rate"     validate:"omitempty,gte=0"            swaggertype:"string"`
	Source          model.Source    `json:"source"           validate:"omitempty,hotelops"`
	SpecialRequests string          `json:"special_requests" validate:"omitempty,max=500"`
}

// Dates parses the stay dates and rejects a stay that does not last at least one night.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.ParseDate(c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkOut, err = timezone.ParseDate(c.CheckOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err) //nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.Rejected(model.ReasonInvalidDates, "Check-out date must be after check-in date") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type AssignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type PaymentRequest struct {
	Amount    decimal.Decimal           `json:"amount"    validate:"gt=0"                             swaggertype:"string"`
	Method    ledgerModel.PaymentMethod `json:"method"    validate:"required,hotelops"`
	Reference string                    `json:"reference" validate:"omitempty,max=64"`
	PostedOn  string                    `json:"posted_on" validate:"omitempty,datetime=2006-01-02"`
}

type RefundRequest struct {
	Amount decimal.Decimal           `json:"amount" validate:"gt=0"              swaggertype:"string"`
	Method ledgerModel.PaymentMethod `json:"method" validate:"required,hotelops"`
	Reason string                    `json:"reason" validate:"required,max=255"`
}

type GetBookingsRequest struct {
	Status    model.Status `validate:"omitempty"`
	RoomID    string       `validate:"omitempty,uuid"`
	Guest     string       `validate:"omitempty,max=100"`
	Reference string       `validate:"omitempty,max=64"`
	From      string       `validate:"omitempty,datetime=2006-01-02"`
	To        string       `validate:"omitempty,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID                 string          `json:"id"`
	Reference          string          `json:"reference"`
	GuestID            string          `json:"guest_id"`
	GuestName          string          `json:"guest_name"`
	GuestEmail         string          `json:"guest_email"`
	GuestPhone         string          `json:"guest_phone"`
	RoomID             *string         `json:"room_id"`
	RoomTypeID         string          `json:"room_type_id"`
	CheckInDate        string          `json:"check_in_date"`
	CheckOutDate       string          `json:"check_out_date"`
	Nights             int             `json:"nights"`
	Adults             int             `json:"adults"`
	Status             model.Status    `json:"status"`
	Source             model.Source    `json:"source"`
	NightlyRate        decimal.Decimal `json:"nightly_rate"        swaggertype:"string"`
	TotalAmount        decimal.Decimal `json:"total_amount"        swaggertype:"string"`
	AmountPaid         decimal.Decimal `json:"amount_paid"         swaggertype:"string"`
	Balance            decimal.Decimal `json:"balance"             swaggertype:"string"`
	CancellationFee    decimal.Decimal `json:"cancellation_fee"    swaggertype:"string"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	SpecialRequests    string          `json:"special_requests,omitempty"`
	ActualCheckIn      *string         `json:"actual_check_in"`
	ActualCheckOut     *string         `json:"actual_check_out"`
	CancelledAt        *string         `json:"cancelled_at"`
	gDto.Metadata
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Reference = m.Reference
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.GuestPhone = m.GuestPhone
	r.RoomID = m.RoomID
	r.RoomTypeID = m.RoomTypeID
	r.CheckInDate = timezone.FormatDate(m.CheckInDate)
	r.CheckOutDate = timezone.FormatDate(m.CheckOutDate)
	r.Nights = m.Nights
	r.Adults = m.Adults
	r.Status = m.Status
	r.Source = m.Source
	r.NightlyRate = m.NightlyRate
	r.TotalAmount = m.TotalAmount
	r.AmountPaid = m.AmountPaid
	r.Balance = m.Balance
	r.CancellationFee = m.CancellationFee
	r.CancellationReason = m.CancellationReason
	r.SpecialRequests = m.SpecialRequests
	r.ActualCheckIn = formatTime(m.ActualCheckIn)
	r.ActualCheckOut = formatTime(m.ActualCheckOut)
	r.CancelledAt = formatTime(m.CancelledAt)
	r.Metadata.FromModel(m.Metadata)
}

type InvoiceLineResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"      swaggertype:"string"`
	Kind        string          `json:"kind"`
	CreatedAt   string          `json:"created_at"`
}

type PaymentResponse struct {
	ID        string                    `json:"id"`
	Amount    decimal.Decimal           `json:"amount"     swaggertype:"string"`
	Method    ledgerModel.PaymentMethod `json:"method"`
	Reference string                    `json:"reference"`
	PostedOn  string                    `json:"posted_on"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	Total         decimal.Decimal       `json:"total"       swaggertype:"string"`
	AmountPaid    decimal.Decimal       `json:"amount_paid" swaggertype:"string"`
	Status        model.InvoiceStatus   `json:"status"`
	Lines         []InvoiceLineResponse `json:"lines"`
	Payments      []PaymentResponse     `json:"payments"`
}

func (r *InvoiceResponse) FromModel(invoice model.Invoice, lines []model.InvoiceLine, payments []model.Payment) {
	r.ID = invoice.ID
	r.InvoiceNumber = invoice.InvoiceNumber
	r.Total = invoice.Total
	r.AmountPaid = invoice.AmountPaid
	r.Status = invoice.Status

	r.Lines = make([]InvoiceLineResponse, len(lines))
	for i, line := range lines {
		r.Lines[i] = InvoiceLineResponse{
			Description: line.Description,
			Amount:      line.Amount,
			Kind:        line.Kind,
			CreatedAt:   timezone.Format(line.CreatedAt, constant.DateFormat),
		}
	}

	r.Payments = make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i] = PaymentResponse{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			Reference: payment.Reference,
			PostedOn:  timezone.FormatDate(payment.PostedOn),
		}
	}
}

type BookingDetailResponse struct {
	BookingResponse
	Invoice InvoiceResponse `json:"invoice"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

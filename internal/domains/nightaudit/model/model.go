package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "night_audit_logs"
	EntityName = "night audit log"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldAuditDate = "audit_date"
	FieldStatus    = "status"
	FieldStartedAt = "started_at"
)

const (
	ReasonAlreadyClosed    = "already_closed"
	ReasonInvalidAuditDate = "invalid_audit_date"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// PostingError is a booking whose nightly revenue could not be posted.
type PostingError struct {
	BookingID string `json:"booking_id"`
	Reference string `json:"reference"`
	RoomID    string `json:"room_id,omitempty"`
	Error     string `json:"error"`
}

// OutstandingBalance is an in-house or arriving booking that still owes money.
type OutstandingBalance struct {
	BookingID string          `json:"booking_id"`
	Reference string          `json:"reference"`
	GuestName string          `json:"guest_name"`
	Balance   decimal.Decimal `json:"balance"`
}

type Summary struct {
	BookingsProcessed   int                  `json:"bookings_processed"`
	RevenuePosted       decimal.Decimal      `json:"revenue_posted"`
	CheckedInGuests     int                  `json:"checked_in_guests"`
	PendingOrders       int                  `json:"pending_orders"`
	OutstandingBalances []OutstandingBalance `json:"outstanding_balances"`
	Warnings            []string             `json:"warnings"`
	Errors              []PostingError       `json:"errors"`
}

// Value stores the summary as JSONB.
func (s Summary) Value() (driver.Value, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit summary: %w", err)
	}

	return payload, nil
}

func (s *Summary) Scan(src any) error {
	var payload []byte

	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		payload = value
	case string:
		payload = []byte(value)
	default:
		return errors.New("unsupported audit summary type")
	}

	if err := json.Unmarshal(payload, s); err != nil {
		return fmt.Errorf("failed to unmarshal audit summary: %w", err)
	}

	return nil
}

// Log is the write-once record of one audit run.
type Log struct {
	ID         string     `db:"id"`
	HotelID    string     `db:"hotel_id"`
	AuditDate  time.Time  `db:"audit_date"`
	Status     Status     `db:"status"`
	Summary    Summary    `db:"summary"`
	RunBy      string     `db:"run_by"`
	StartedAt  time.Time  `db:"started_at"`
	FinishedAt *time.Time `db:"finished_at"`
}

package model

import (
	"hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"
)

const (
	TableName  = "business_dates"
	EntityName = "business date"

	FieldHotelID             = "hotel_id"
	FieldCurrentBusinessDate = "current_business_date"
	FieldIsClosed            = "is_closed"
	FieldClosedDate          = "closed_date"
)

// BusinessDate is the operational clock of one hotel. IsClosed marks the current date as being
// closed by a night audit; ClosedDate is the last date the audit finished.
type BusinessDate struct {
	HotelID             string     `db:"hotel_id"`
	CurrentBusinessDate time.Time  `db:"current_business_date"`
	IsClosed            bool       `db:"is_closed"`
	ClosedDate          *time.Time `db:"closed_date"`
	model.Metadata
}

// Current returns the business date normalized to a calendar date.
func (b BusinessDate) Current() time.Time {
	return timezone.Date(b.CurrentBusinessDate)
}

// IsLocked reports whether postings dated on date are no longer accepted.
func (b BusinessDate) IsLocked(date time.Time) bool {
	date = timezone.Date(date)

	if b.IsClosed && date.Equal(b.Current()) {
		return true
	}

	return b.ClosedDate != nil && !date.After(timezone.Date(*b.ClosedDate))
}

package model

import (
	"fmt"
	"hotelops/config"
	"hotelops/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces     = 2
	referenceSuffix = 6
)

var hundred = decimal.NewFromInt(100)

// Nights returns the number of nights between two stay dates.
func Nights(checkIn, checkOut time.Time) int {
	return timezone.DaysBetween(checkIn, checkOut)
}

// StayTotal prices a stay at a flat nightly rate.
func StayTotal(rate decimal.Decimal, nights int) decimal.Decimal {
	return rate.Mul(decimal.NewFromInt(int64(nights))).Round(moneyPlaces)
}

// CancellationFee charges the policy percentage of the booking total for a cancellation made
// daysBefore days ahead of check-in.
func CancellationFee(policy config.Policy, total decimal.Decimal, daysBefore int) decimal.Decimal {
	percent := policy.CancellationTiers.Percent(daysBefore)

	return total.Mul(percent).Div(hundred).Round(moneyPlaces)
}

// NoShowFee charges the policy number of nights, never more than the stay itself.
func NoShowFee(policy config.Policy, total decimal.Decimal, nights int) decimal.Decimal {
	if nights <= 0 {
		return decimal.Zero
	}

	charged := min(policy.NoShowNights, nights)

	return total.Div(decimal.NewFromInt(int64(nights))).Mul(decimal.NewFromInt(int64(charged))).Round(moneyPlaces)
}

// NewReference builds a booking reference such as BK-20260314-4F9A1C.
func NewReference(prefix string, date time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:referenceSuffix]

	return fmt.Sprintf("%s-%s-%s", prefix, date.Format("20060102"), suffix)
}

// InvoiceNumber derives the invoice number from the booking reference.
func InvoiceNumber(reference string) string {
	return "INV-" + reference
}

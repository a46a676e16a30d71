package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultNoShowNights            = 1
	defaultMaintenanceConflictDays = 7
	defaultBookingReferencePrefix  = "BK"
)

var (
	defaultRevenueLossRatio = decimal.RequireFromString("0.7")
	defaultTaxRate          = decimal.RequireFromString("0.18")
)

// FeeTier charges Percent of the booking total when the cancellation happens at least MinDays
// before check-in.
type FeeTier struct {
	MinDays int
	Percent decimal.Decimal
}

type FeeTiers []FeeTier

// Decode implements envconfig.Decoder for values such as "7:0,3:50,0:100".
func (t *FeeTiers) Decode(value string) error {
	tiers := FeeTiers{}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		days, percent, found := strings.Cut(part, ":")
		if !found {
			return fmt.Errorf("invalid fee tier %q: expected <days>:<percent>", part)
		}

		minDays, err := strconv.Atoi(strings.TrimSpace(days))
		if err != nil || minDays < 0 {
			return fmt.Errorf("invalid fee tier days %q", days)
		}

		pct, err := decimal.NewFromString(strings.TrimSpace(percent))
		if err != nil || pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("invalid fee tier percent %q", percent)
		}

		tiers = append(tiers, FeeTier{MinDays: minDays, Percent: pct})
	}

	*t = tiers.Sorted()

	return nil
}

// Sorted returns the tiers ordered from the largest threshold to the smallest.
func (t FeeTiers) Sorted() FeeTiers {
	sorted := slices.Clone(t)
	slices.SortFunc(sorted, func(a, b FeeTier) int {
		return b.MinDays - a.MinDays
	})

	return sorted
}

// Percent returns the fee percentage for a cancellation daysBefore days ahead of check-in.
// Anything below the smallest threshold pays the full amount.
func (t FeeTiers) Percent(daysBefore int) decimal.Decimal {
	for _, tier := range t.Sorted() {
		if daysBefore >= tier.MinDays {
			return tier.Percent
		}
	}

	return decimal.NewFromInt(100)
}

func DefaultFeeTiers() FeeTiers {
	return FeeTiers{
		{MinDays: 7, Percent: decimal.Zero},
		{MinDays: 3, Percent: decimal.NewFromInt(50)},
		{MinDays: 0, Percent: decimal.NewFromInt(100)},
	}
}

type Policy struct {
	CancellationTiers       FeeTiers         `envconfig:"CANCELLATION_TIERS"`
	NoShowNights            int              `envconfig:"NO_SHOW_NIGHTS"`
	MaintenanceConflictDays int              `envconfig:"MAINTENANCE_CONFLICT_DAYS"`
	RevenueLossRatio        *decimal.Decimal `envconfig:"REVENUE_LOSS_RATIO"`
	TaxRate                 *decimal.Decimal `envconfig:"TAX_RATE"`
	BookingReferencePrefix  string           `envconfig:"BOOKING_REFERENCE_PREFIX"`
}

// WithDefaults fills every unset policy value with the house default. Rates are unset only when
// nil, so an explicit zero stays zero.
func (p Policy) WithDefaults() Policy {
	if len(p.CancellationTiers) == 0 {
		p.CancellationTiers = DefaultFeeTiers()
	}

	if p.NoShowNights <= 0 {
		p.NoShowNights = defaultNoShowNights
	}

	if p.MaintenanceConflictDays <= 0 {
		p.MaintenanceConflictDays = defaultMaintenanceConflictDays
	}

	if p.RevenueLossRatio == nil {
		ratio := defaultRevenueLossRatio
		p.RevenueLossRatio = &ratio
	}

	if p.TaxRate == nil {
		rate := defaultTaxRate
		p.TaxRate = &rate
	}

	if p.BookingReferencePrefix == "" {
		p.BookingReferencePrefix = defaultBookingReferencePrefix
	}

	return p
}

package model_test

import (
	"hotelops/internal/domains/nightaudit/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummaryScan(t *testing.T) {
	summary := model.Summary{
		BookingsProcessed: 2,
		RevenuePosted:     decimal.NewFromInt(150000),
		Warnings:          []string{"1 guest still checked in"},
		Errors:            []model.PostingError{{BookingID: "booking-2", Reference: "BK-20260314-AAAAAA", Error: "booking is being modified"}},
	}

	value, err := summary.Value()
	assert.NoError(t, err)

	var scanned model.Summary
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, 2, scanned.BookingsProcessed)
	assert.True(t, scanned.RevenuePosted.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, summary.Warnings, scanned.Warnings)
	assert.Equal(t, summary.Errors, scanned.Errors)

	assert.NoError(t, scanned.Scan(nil))
	assert.Error(t, scanned.Scan(42))
}

package model_test

import (
	"hotelops/internal/domains/ledger/model"
	"hotelops/shared/failure"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var auditDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestBuildersAreBalanced(t *testing.T) {
	postings := map[string]model.Posting{
		"booking charge":   model.BookingCharge(auditDate, "BK-1", amount(300000)),
		"charge void":      model.ChargeVoid(auditDate, "BK-1", amount(300000)),
		"accrual":          model.RoomRevenueAccrual(auditDate, "BK-1", amount(50000)),
		"payment":          model.PaymentReceived(auditDate, "BK-1", model.PaymentMethodCard, amount(300000)),
		"payment reversal": model.PaymentReversal(auditDate, "BK-1", model.PaymentMethodCash, amount(10000)),
		"refund":           model.Refund(auditDate, "BK-1", model.PaymentMethodBankTransfer, amount(5000)),
		"cancellation fee": model.CancellationFee(auditDate, "BK-1", model.SourceCancellationFee, amount(200000)),
		"no-show fee":      model.CancellationFee(auditDate, "BK-1", model.SourceNoShowFee, amount(100000)),
		"restaurant":       model.RestaurantSale(auditDate, "ORD-1", model.PaymentMethodCash, false, amount(1000), decimal.RequireFromString("180")),
		"restaurant room":  model.RestaurantSale(auditDate, "ORD-2", model.PaymentMethodRoomCharge, true, amount(1000), decimal.Zero),
	}

	for name, posting := range postings {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, posting.Validate())
			assert.True(t, posting.TotalDebit().Equal(posting.TotalCredit()))
		})
	}
}

func TestCanonicalAccounts(t *testing.T) {
	accrual := model.RoomRevenueAccrual(auditDate, "BK-1", amount(50000))
	assert.Equal(t, model.AccountReceivable, accrual.Lines[0].AccountCode)
	assert.True(t, accrual.Lines[0].Debit.Equal(amount(50000)))
	assert.Equal(t, model.AccountRoomRevenue, accrual.Lines[1].AccountCode)
	assert.True(t, accrual.Lines[1].Credit.Equal(amount(50000)))

	payment := model.PaymentReceived(auditDate, "BK-1", model.PaymentMethodRoomCharge, amount(10))
	assert.Equal(t, model.AccountRoomsReceivable, payment.Lines[0].AccountCode)
	assert.Equal(t, model.AccountReceivable, payment.Lines[1].AccountCode)

	refund := model.Refund(auditDate, "BK-1", model.PaymentMethodCash, amount(10))
	assert.Equal(t, model.AccountRoomRevenue, refund.Lines[0].AccountCode)
	assert.True(t, refund.Lines[0].Debit.IsPositive())
	assert.Equal(t, model.AccountCash, refund.Lines[1].AccountCode)
	assert.True(t, refund.Lines[1].Credit.IsPositive())

	void := model.ChargeVoid(auditDate, "BK-1", amount(10))
	assert.Equal(t, model.AccountReceivable, void.Lines[0].AccountCode)
	assert.True(t, void.Lines[0].Credit.IsPositive())
	assert.Equal(t, model.SourceChargeVoid, void.Source)

	sale := model.RestaurantSale(auditDate, "ORD-1", model.PaymentMethodCard, false, amount(100), amount(18))
	assert.Len(t, sale.Lines, 3)
	assert.Equal(t, model.AccountBank, sale.Lines[0].AccountCode)
	assert.True(t, sale.Lines[0].Debit.Equal(amount(118)))
}

func TestPostingValidate(t *testing.T) {
	tests := []struct {
		name    string
		posting model.Posting
		reason  string
	}{
		{
			name: "debit and credit differ",
			posting: model.Posting{Date: auditDate, Lines: []model.PostingLine{
				{AccountCode: model.AccountReceivable, Debit: amount(100)},
				{AccountCode: model.AccountRoomRevenue, Credit: amount(90)},
			}},
			reason: model.ReasonUnbalancedEntry,
		},
		{
			name: "credit lines only",
			posting: model.Posting{Date: auditDate, Lines: []model.PostingLine{
				{AccountCode: model.AccountRoomRevenue, Credit: amount(90)},
			}},
			reason: model.ReasonUnbalancedEntry,
		},
		{
			name:    "no lines",
			posting: model.Posting{Date: auditDate},
			reason:  model.ReasonUnbalancedEntry,
		},
		{
			name: "line on both sides",
			posting: model.Posting{Date: auditDate, Lines: []model.PostingLine{
				{AccountCode: model.AccountReceivable, Debit: amount(100), Credit: amount(100)},
			}},
			reason: model.ReasonInvalidPosting,
		},
		{
			name: "negative amount",
			posting: model.Posting{Date: auditDate, Lines: []model.PostingLine{
				{AccountCode: model.AccountReceivable, Debit: amount(-100)},
				{AccountCode: model.AccountRoomRevenue, Credit: amount(-100)},
			}},
			reason: model.ReasonInvalidPosting,
		},
		{
			name:    "missing date",
			posting: model.Posting{Lines: model.BookingCharge(auditDate, "BK-1", amount(1)).Lines},
			reason:  model.ReasonInvalidPosting,
		},
		{
			name:    "zero amount",
			posting: model.BookingCharge(auditDate, "BK-1", decimal.Zero),
			reason:  model.ReasonInvalidPosting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.posting.Validate()

			assert.Error(t, err)
			assert.Equal(t, tt.reason, failure.GetReason(err))
		})
	}
}

func TestReversed(t *testing.T) {
	charge := model.BookingCharge(auditDate, "BK-1", amount(100))
	reversed := charge.Reversed()

	assert.True(t, reversed.Lines[0].Credit.Equal(amount(100)))
	assert.True(t, reversed.Lines[0].Debit.IsZero())
	assert.True(t, charge.Lines[0].Debit.Equal(amount(100)), "original posting is left untouched")
}

func TestAccountTypeBalance(t *testing.T) {
	assert.True(t, model.AccountTypeAsset.Balance(amount(100), amount(30)).Equal(amount(70)))
	assert.True(t, model.AccountTypeRevenue.Balance(amount(30), amount(100)).Equal(amount(70)))
}

func TestPaymentMethodValidate(t *testing.T) {
	assert.NoError(t, model.PaymentMethodMobileMoney.Validate(nil))
	assert.Error(t, model.PaymentMethod("cheque").Validate(nil))
	assert.Equal(t, model.AccountBank, model.PaymentMethodMobileMoney.AccountCode())
}

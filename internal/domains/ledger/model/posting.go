package model

import (
	"fmt"
	"hotelops/shared/failure"
	"time"

	"github.com/shopspring/decimal"
)

// Entry sources.
const (
	SourceBooking         = "booking"
	SourcePayment         = "payment"
	SourceRefund          = "refund"
	SourceChargeVoid      = "charge_void"
	SourceCancellationFee = "cancellation_fee"
	SourceNoShowFee       = "no_show_fee"
	SourcePaymentReversal = "payment_reversal"
	SourceNightAudit      = "night_audit"
	SourceRestaurant      = "restaurant"
)

type PostingLine struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Memo        string
}

// Posting is a fully computed journal entry that has not been stored yet.
type Posting struct {
	Date        time.Time
	Reference   string
	Description string
	Source      string
	Lines       []PostingLine
}

func (p Posting) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.Debit)
	}

	return total
}

func (p Posting) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.Credit)
	}

	return total
}

// Validate rejects a posting that could not be stored as a balanced double entry: it needs at least
// one debit and one credit line, every line on exactly one side with a positive amount, and equal totals.
func (p Posting) Validate() error {
	if p.Date.IsZero() {
		return failure.Rejected(ReasonInvalidPosting, "journal entry has no posting date") //nolint:wrapcheck
	}

	var debits, credits int

	for i, line := range p.Lines {
		if line.AccountCode == "" {
			return failure.Rejected(ReasonInvalidPosting, fmt.Sprintf("journal line %d has no account", i+1)) //nolint:wrapcheck
		}

		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return failure.Rejected(ReasonInvalidPosting, fmt.Sprintf("journal line %d has a negative amount", i+1)) //nolint:wrapcheck
		}

		switch {
		case line.Debit.IsPositive() && line.Credit.IsZero():
			debits++
		case line.Credit.IsPositive() && line.Debit.IsZero():
			credits++
		default:
			return failure.Rejected(ReasonInvalidPosting, fmt.Sprintf("journal line %d must be either a debit or a credit", i+1)) //nolint:wrapcheck
		}
	}

	if debits == 0 || credits == 0 {
		return failure.Rejected(ReasonUnbalancedEntry, "journal entry needs at least one debit and one credit line") //nolint:wrapcheck
	}

	if totalDebit, totalCredit := p.TotalDebit(), p.TotalCredit(); !totalDebit.Equal(totalCredit) {
		return failure.Rejected(ReasonUnbalancedEntry, fmt.Sprintf("journal entry is unbalanced: debit %s, credit %s", totalDebit, totalCredit)) //nolint:wrapcheck
	}

	return nil
}

// Reversed swaps every line to the opposite side.
func (p Posting) Reversed() Posting {
	reversed := p
	reversed.Lines = make([]PostingLine, len(p.Lines))

	for i, line := range p.Lines {
		reversed.Lines[i] = PostingLine{AccountCode: line.AccountCode, Debit: line.Credit, Credit: line.Debit, Memo: line.Memo}
	}

	return reversed
}

func debit(code string, amount decimal.Decimal, memo string) PostingLine {
	return PostingLine{AccountCode: code, Debit: amount, Memo: memo}
}

func credit(code string, amount decimal.Decimal, memo string) PostingLine {
	return PostingLine{AccountCode: code, Credit: amount, Memo: memo}
}

// BookingCharge records room charges for a stay: Debit Accounts Receivable / Credit Room Revenue.
func BookingCharge(date time.Time, reference string, amount decimal.Decimal) Posting {
	return Posting{
		Date:        date,
		Reference:   reference,
		Description: "Room charges for booking " + reference,
		Source:      SourceBooking,
		Lines: []PostingLine{
			debit(AccountReceivable, amount, "room charges"),
			credit(AccountRoomRevenue, amount, "room charges"),
		},
	}
}

// ChargeVoid reverses outstanding room charges of a stay that will not happen.
func ChargeVoid(date time.Time, reference string, amount decimal.Decimal) Posting {
	void := BookingCharge(date, reference, amount).Reversed()
	void.Description = "Void room charges for booking " + reference
	void.Source = SourceChargeVoid

	return void
}

// RoomRevenueAccrual posts one night of an in-house stay during night audit.
func RoomRevenueAccrual(date time.Time, reference string, amount decimal.Decimal) Posting {
	return Posting{
		Date:        date,
		Reference:   reference,
		Description: "Night audit room revenue for booking " + reference,
		Source:      SourceNightAudit,
		Lines: []PostingLine{
			debit(AccountReceivable, amount, "room night"),
			credit(AccountRoomRevenue, amount, "room night"),
		},
	}
}

// PaymentReceived: Debit Cash, Bank or Rooms Receivable by method / Credit Accounts Receivable.
func PaymentReceived(date time.Time, reference string, method PaymentMethod, amount decimal.Decimal) Posting {
	return Posting{
		Date:        date,
		Reference:   reference,
		Description: fmt.Sprintf("Payment (%s) for booking %s", method, reference),
		Source:      SourcePayment,
		Lines: []PostingLine{
			debit(method.AccountCode(), amount, string(method)),
			credit(AccountReceivable, amount, "payment received"),
		},
	}
}

// PaymentReversal returns money already received: the exact reverse of PaymentReceived.
func PaymentReversal(date time.Time, reference string, method PaymentMethod, amount decimal.Decimal) Posting {
	reversal := PaymentReceived(date, reference, method, amount).Reversed()
	reversal.Description = fmt.Sprintf("Refund of excess payment (%s) for booking %s", method, reference)
	reversal.Source = SourcePaymentReversal

	return reversal
}

// Refund gives an allowance back to the guest: Debit Room Revenue / Credit Cash, Bank or Rooms Receivable.
func Refund(date time.Time, reference string, method PaymentMethod, amount decimal.Decimal) Posting {
	return Posting{
		Date:        date,
		Reference:   reference,
		Description: fmt.Sprintf("Refund (%s) for booking %s", method, reference),
		Source:      SourceRefund,
		Lines: []PostingLine{
			debit(AccountRoomRevenue, amount, "refund"),
			credit(method.AccountCode(), amount, string(method)),
		},
	}
}

// CancellationFee charges a cancellation or no-show fee: Debit Accounts Receivable / Credit Cancellation Fee Revenue.
func CancellationFee(date time.Time, reference, source string, amount decimal.Decimal) Posting {
	return Posting{
		Date:        date,
		Reference:   reference,
		Description: fmt.Sprintf("%s for booking %s", feeLabel(source), reference),
		Source:      source,
		Lines: []PostingLine{
			debit(AccountReceivable, amount, feeLabel(source)),
			credit(AccountCancellationFeeRevenue, amount, feeLabel(source)),
		},
	}
}

func feeLabel(source string) string {
	if source == SourceNoShowFee {
		return "No-show fee"
	}

	return "Cancellation fee"
}

// RestaurantSale settles a restaurant order. Paid orders debit the method's account; orders charged to a
// room debit Accounts Receivable so they join the guest's folio.
func RestaurantSale(date time.Time, reference string, method PaymentMethod, chargeToRoom bool, subtotal, tax decimal.Decimal) Posting {
	debitAccount := method.AccountCode()
	if chargeToRoom {
		debitAccount = AccountReceivable
	}

	lines := []PostingLine{
		debit(debitAccount, subtotal.Add(tax), "restaurant order"),
		credit(AccountFoodBeverageRevenue, subtotal, "food & beverage"),
	}

	if tax.IsPositive() {
		lines = append(lines, credit(AccountTaxPayable, tax, "sales tax"))
	}

	return Posting{
		Date:        date,
		Reference:   reference,
		Description: "Restaurant order " + reference,
		Source:      SourceRestaurant,
		Lines:       lines,
	}
}

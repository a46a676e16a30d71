package model

import (
	"hotelops/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTableName  = "chart_of_accounts"
	AccountEntityName = "account"

	EntryTableName  = "journal_entries"
	EntryEntityName = "journal entry"

	LineTableName  = "journal_lines"
	LineEntityName = "journal line"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldCode      = "code"
	FieldEntryID   = "entry_id"
	FieldEntryDate = "entry_date"
	FieldReference = "reference"
	FieldSource    = "source"
	FieldDeletedAt = "deleted_at"
)

const (
	ReasonUnbalancedEntry = "unbalanced_entry"
	ReasonInvalidPosting  = "invalid_posting"
)

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Balance returns the account balance on its normal side.
func (t AccountType) Balance(debit, credit decimal.Decimal) decimal.Decimal {
	if t == AccountTypeAsset || t == AccountTypeExpense {
		return debit.Sub(credit)
	}

	return credit.Sub(debit)
}

// Chart of accounts codes provisioned for every hotel.
const (
	AccountCash                   = "1000"
	AccountBank                   = "1010"
	AccountReceivable             = "1100"
	AccountRoomsReceivable        = "1110"
	AccountTaxPayable             = "2100"
	AccountRoomRevenue            = "4000"
	AccountFoodBeverageRevenue    = "4100"
	AccountCancellationFeeRevenue = "4200"
)

type AccountTemplate struct {
	Code string
	Name string
	Type AccountType
}

func DefaultChart() []AccountTemplate {
	return []AccountTemplate{
		{Code: AccountCash, Name: "Cash", Type: AccountTypeAsset},
		{Code: AccountBank, Name: "Bank", Type: AccountTypeAsset},
		{Code: AccountReceivable, Name: "Accounts Receivable", Type: AccountTypeAsset},
		{Code: AccountRoomsReceivable, Name: "Rooms Receivable", Type: AccountTypeAsset},
		{Code: AccountTaxPayable, Name: "Tax Payable", Type: AccountTypeLiability},
		{Code: AccountRoomRevenue, Name: "Room Revenue", Type: AccountTypeRevenue},
		{Code: AccountFoodBeverageRevenue, Name: "Food & Beverage Revenue", Type: AccountTypeRevenue},
		{Code: AccountCancellationFeeRevenue, Name: "Cancellation Fee Revenue", Type: AccountTypeRevenue},
	}
}

type Account struct {
	ID       string      `db:"id"`
	HotelID  string      `db:"hotel_id"`
	Code     string      `db:"code"`
	Name     string      `db:"name"`
	Type     AccountType `db:"type"`
	IsActive bool        `db:"is_active"`
	model.Metadata
}

type JournalEntry struct {
	ID          string     `db:"id"`
	HotelID     string     `db:"hotel_id"`
	EntryDate   time.Time  `db:"entry_date"`
	Reference   string     `db:"reference"`
	Description string     `db:"description"`
	Source      string     `db:"source"`
	DeletedAt   *time.Time `db:"deleted_at"`
	model.Metadata
}

type JournalLine struct {
	ID          string          `db:"id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Memo        string          `db:"memo"`
	AccountCode string          `column:"code" db:"account_code" table:"chart_of_accounts"`
	AccountName string          `column:"name" db:"account_name" table:"chart_of_accounts"`
}

func (JournalLine) GetJoinQuery() string {
	return "JOIN chart_of_accounts ON chart_of_accounts.id = journal_lines.account_id"
}

// AccountBalance is one row of the trial balance.
type AccountBalance struct {
	Code   string          `db:"code"`
	Name   string          `db:"name"`
	Type   AccountType     `db:"type"`
	Debit  decimal.Decimal `db:"debit"`
	Credit decimal.Decimal `db:"credit"`
}

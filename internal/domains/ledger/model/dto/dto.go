package dto

import (
	"hotelops/internal/domains/ledger/model"
	"hotelops/shared"
	"hotelops/shared/timezone"

	"github.com/shopspring/decimal"
)

type GetEntriesRequest struct {
	From      string `json:"from"      validate:"omitempty,datetime=2006-01-02"`
	To        string `json:"to"        validate:"omitempty,datetime=2006-01-02"`
	Reference string `json:"reference" validate:"omitempty,max=64"`
	Source    string `json:"source"    validate:"omitempty,max=32"`
}

type LineResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	EntryDate   string          `json:"entry_date"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Lines       []LineResponse  `json:"lines"`
}

func (r *EntryResponse) FromModel(entry model.JournalEntry, lines []model.JournalLine) {
	r.ID = entry.ID
	r.EntryDate = timezone.FormatDate(entry.EntryDate)
	r.Reference = entry.Reference
	r.Description = entry.Description
	r.Source = entry.Source
	r.TotalDebit = decimal.Zero
	r.TotalCredit = decimal.Zero

	r.Lines = make([]LineResponse, len(lines))
	for i, line := range lines {
		r.Lines[i] = LineResponse{
			AccountCode: line.AccountCode,
			AccountName: line.AccountName,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Memo:        line.Memo,
		}
		r.TotalDebit = r.TotalDebit.Add(line.Debit)
		r.TotalCredit = r.TotalCredit.Add(line.Credit)
	}
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels groups lines under their entries, keeping the entry order.
func (r *GetEntriesResponse) FromModels(entries []model.JournalEntry, lines []model.JournalLine, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byEntry := make(map[string][]model.JournalLine, len(entries))
	for _, line := range lines {
		byEntry[line.EntryID] = append(byEntry[line.EntryID], line)
	}

	r.Entries = make([]EntryResponse, len(entries))
	for i, entry := range entries {
		r.Entries[i].FromModel(entry, byEntry[entry.ID])
	}
}

type TrialBalanceRow struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

type TrialBalanceResponse struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Accounts    []TrialBalanceRow `json:"accounts"`
	TotalDebit  decimal.Decimal   `json:"total_debit"`
	TotalCredit decimal.Decimal   `json:"total_credit"`
	Balanced    bool              `json:"balanced"`
}

func (r *TrialBalanceResponse) FromModels(balances []model.AccountBalance) {
	r.TotalDebit = decimal.Zero
	r.TotalCredit = decimal.Zero

	r.Accounts = make([]TrialBalanceRow, len(balances))
	for i, row := range balances {
		r.Accounts[i] = TrialBalanceRow{
			Code:    row.Code,
			Name:    row.Name,
			Type:    string(row.Type),
			Debit:   row.Debit,
			Credit:  row.Credit,
			Balance: row.Type.Balance(row.Debit, row.Credit),
		}
		r.TotalDebit = r.TotalDebit.Add(row.Debit)
		r.TotalCredit = r.TotalCredit.Add(row.Credit)
	}

	r.Balanced = r.TotalDebit.Equal(r.TotalCredit)
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/internal/domains/ledger/model"
	"hotelops/internal/domains/ledger/model/dto"
	"hotelops/internal/domains/ledger/repository"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Ledger interface {
	EnsureChartTx(ctx context.Context, tx *sqlx.Tx, hotelID string) (map[string]model.Account, error)
	PostTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, posting model.Posting) (model.JournalEntry, error)
	GetEntries(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetEntriesRequest) (dto.GetEntriesResponse, error)
	TrialBalance(ctx context.Context, hotelID string, from, to time.Time) (dto.TrialBalanceResponse, error)
}

type serviceImpl struct {
	accountRepo repository.Account
	entryRepo   repository.Entry
	lineRepo    repository.Line
	cfg         *config.Config
	otel        otel.Otel
}

func New(accountRepo repository.Account, entryRepo repository.Entry, lineRepo repository.Line, cfg *config.Config, otel otel.Otel) Ledger {
	return &serviceImpl{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		lineRepo:    lineRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

// EnsureChartTx returns the hotel's accounts by code, provisioning the default chart on first use.
func (s *serviceImpl) EnsureChartTx(ctx context.Context, tx *sqlx.Tx, hotelID string) (res map[string]model.Account, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.EnsureChartTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByHotel(hotelID, model.AccountTableName)

	accounts, err := s.accountRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get chart of accounts")

		return nil, fmt.Errorf("failed to get chart of accounts: %w", err)
	}

	chart := model.DefaultChart()
	if len(accounts) < len(chart) {
		metadata := gModel.NewMetadata(timezone.Now(), constant.SystemActor)
		missing := make([]model.Account, 0, len(chart))

		for _, template := range chart {
			missing = append(missing, model.Account{
				ID:       uuid.NewString(),
				HotelID:  hotelID,
				Code:     template.Code,
				Name:     template.Name,
				Type:     template.Type,
				IsActive: true,
				Metadata: metadata,
			})
		}

		if err = s.accountRepo.EnsureTx(ctx, tx, missing); err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to provision chart of accounts")

			return nil, fmt.Errorf("failed to provision chart of accounts: %w", err)
		}

		accounts, err = s.accountRepo.GetAllTx(ctx, tx, gDto.QueryParams{}, filter)
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get chart of accounts")

			return nil, fmt.Errorf("failed to get chart of accounts: %w", err)
		}
	}

	res = make(map[string]model.Account, len(accounts))
	for _, account := range accounts {
		res[account.Code] = account
	}

	return res, nil
}

// PostTx stores a balanced journal entry inside the caller's unit of work. The posting is fully
// validated before the first row is written.
func (s *serviceImpl) PostTx(ctx context.Context, tx *sqlx.Tx, hotelID, actor string, posting model.Posting) (res model.JournalEntry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.PostTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelHotelAttributeKey, hotelID)

	if err = posting.Validate(); err != nil {
		return res, err
	}

	accounts, err := s.EnsureChartTx(ctx, tx, hotelID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	entry := model.JournalEntry{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		EntryDate:   timezone.Date(posting.Date),
		Reference:   posting.Reference,
		Description: posting.Description,
		Source:      posting.Source,
		Metadata:    gModel.NewMetadata(now, actor),
	}

	lines := make([]model.JournalLine, len(posting.Lines))
	for i, line := range posting.Lines {
		account, ok := accounts[line.AccountCode]
		if !ok || !account.IsActive {
			return res, fmt.Errorf("account %s is not available for hotel %s", line.AccountCode, hotelID)
		}

		lines[i] = model.JournalLine{
			ID:        uuid.NewString(),
			EntryID:   entry.ID,
			AccountID: account.ID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			Memo:      line.Memo,
		}
	}

	if err = s.entryRepo.InsertTx(ctx, tx, entry); err != nil {
		log.Error().Err(err).Str("reference", posting.Reference).Msg("failed to insert journal entry")

		return res, fmt.Errorf("failed to insert journal entry: %w", err)
	}

	if err = s.lineRepo.InsertBulkTx(ctx, tx, lines); err != nil {
		log.Error().Err(err).Str("reference", posting.Reference).Msg("failed to insert journal lines")

		return res, fmt.Errorf("failed to insert journal lines: %w", err)
	}

	log.Info().
		Str("hotel_id", hotelID).
		Str("reference", posting.Reference).
		Str("source", posting.Source).
		Str("amount", posting.TotalDebit().String()).
		Msg("journal entry posted")

	return entry, nil
}

func (s *serviceImpl) GetEntries(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetEntriesRequest) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.GetEntries")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{
		gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.EntryTableName},
	}

	if req.From != "" {
		from, err := timezone.ParseDate(req.From)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{ArgName: "entry_from", Field: model.FieldEntryDate, Value: from, Operator: gDto.FilterOperatorGreaterEq, Table: model.EntryTableName})
	}

	if req.To != "" {
		to, err := timezone.ParseDate(req.To)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{ArgName: "entry_to", Field: model.FieldEntryDate, Value: to, Operator: gDto.FilterOperatorLessEq, Table: model.EntryTableName})
	}

	if req.Reference != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldReference, Value: req.Reference, Operator: gDto.FilterOperatorEq, Table: model.EntryTableName})
	}

	if req.Source != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldSource, Value: req.Source, Operator: gDto.FilterOperatorEq, Table: model.EntryTableName})
	}

	filter := shared.FilterByHotel(hotelID, model.EntryTableName, filters...)

	if params.SortBy == "" {
		params.SortBy = model.FieldEntryDate
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.entryRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count journal entries")

		return res, fmt.Errorf("failed to count journal entries: %w", err)
	}

	entries, err := s.entryRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get journal entries")

		return res, fmt.Errorf("failed to get journal entries: %w", err)
	}

	var lines []model.JournalLine

	if len(entries) > 0 {
		ids := make([]string, len(entries))
		for i, entry := range entries {
			ids[i] = entry.ID
		}

		lines, err = s.lineRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldEntryID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.LineTableName},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get journal lines")

			return res, fmt.Errorf("failed to get journal lines: %w", err)
		}
	}

	res.FromModels(entries, lines, total, params.Limit)

	return res, nil
}

// TrialBalance sums every account over [from, to]. A zero bound defaults to the start of the
// current month or today.
func (s *serviceImpl) TrialBalance(ctx context.Context, hotelID string, from, to time.Time) (res dto.TrialBalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ledger.TrialBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	today := timezone.Today()
	if to.IsZero() {
		to = today
	}

	if from.IsZero() {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	balances, err := s.accountRepo.TrialBalance(ctx, hotelID, timezone.Date(from), timezone.Date(to))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to compute trial balance")

		return res, fmt.Errorf("failed to compute trial balance: %w", err)
	}

	res.FromModels(balances)
	res.From = timezone.FormatDate(from)
	res.To = timezone.FormatDate(to)

	if !res.Balanced {
		log.Warn().
			Str("hotel_id", hotelID).
			Str("debit", res.TotalDebit.String()).
			Str("credit", res.TotalCredit.String()).
			Msg("trial balance does not balance")
	}

	return res, nil
}

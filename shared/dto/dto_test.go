package dto_test

import (
	"hotelops/shared/constant"
	"hotelops/shared/dto"
	"hotelops/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "user-1",
		ModifiedBy: "system",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEqual(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, "user-1", metadata.CreatedBy)
	assert.Equal(t, "system", metadata.ModifiedBy)

	empty := dto.Metadata{}
	empty.FromModel(model.Metadata{})

	assert.Empty(t, empty.CreatedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=check_in_date&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "check_in_date", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults",
			want: dto.QueryParams{},
		},
		{
			name:         "invalid paging falls back",
			query:        "page=-1&limit=abc",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "limit is capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:  "sort key must be a column name",
			query: "sort_by=number%3BDROP%20TABLE%20rooms&sort_dir=sideways",
			want:  dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/hotels/hotel-1/bookings?"+tt.query, nil)

			got := dto.QueryParams{}
			got.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, (&dto.QueryParams{}).Offset())
	assert.Equal(t, 0, (&dto.QueryParams{Page: 1, Limit: 10}).Offset())
	assert.Equal(t, 20, (&dto.QueryParams{Page: 3, Limit: 10}).Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal",
			filter:    dto.Filter{Field: "status", Value: "dirty", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.status = :status",
			wantArgs:  map[string]any{"status": "dirty"},
		},
		{
			name:      "range with arg names",
			filter:    dto.Filter{ArgName: "from", Field: "entry_date", Value: "2026-10-01", Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "entry_date >= :from",
			wantArgs:  map[string]any{"from": "2026-10-01"},
		},
		{
			name:      "in with a single value stays bound",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status) ",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull, Table: "journal_entries"},
			wantWhere: "journal_entries.deleted_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "status", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_SkipsEmptyPredicates(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "hotel_id", Value: "hotel-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
			dto.Filter{Field: "status", Value: "x", Operator: "between"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel_id = :hotel_id)", where)
	assert.Equal(t, map[string]any{"hotel_id": "hotel-1"}, args)
}

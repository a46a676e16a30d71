package dto

import (
	"hotelops/shared/constant"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// sort keys are spliced into ORDER BY, so only bare column names pass.
var sortKeyPattern = regexp.MustCompile(`^[a-z][a-z_]{0,62}$`)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads paging and sorting from the query string. With withDefaults, missing
// page and limit fall back to the first page of DefaultValueLimit rows. Limit is capped at MaxValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	if page, err := strconv.Atoi(values.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(values.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.ToLower(values.Get(constant.RequestParamSortBy)); sortKeyPattern.MatchString(sortBy) {
		q.SortBy = sortBy
	}

	switch sortDir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); sortDir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = sortDir
	}

	if withDefaults {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Offset is the number of rows skipped before the current page.
func (q *QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

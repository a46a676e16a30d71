package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
	"hotelops/shared/dto"
	"hotelops/shared/timezone"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	fieldHotelID = "hotel_id"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

// ActorFromContext names who performed a change. Internal calls authenticated by API key act as the system.
func ActorFromContext(ctx context.Context) string {
	if actor, _ := ctx.Value(constant.ContextKeyUserID).(string); actor != constant.Empty {
		return actor
	}

	return constant.SystemActor
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Touch returns the update map for a state change made by actor.
func Touch(fields map[string]any, actor string) map[string]any {
	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByHotel scopes a filter group to one hotel. Extra filters are joined with AND.
func FilterByHotel(hotelID, table string, filters ...any) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: append([]any{
			dto.Filter{
				Field:    fieldHotelID,
				Value:    hotelID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		}, filters...),
	}
}

// FilterByHotelAndID matches a single row of a hotel.
func FilterByHotelAndID(hotelID, id, fieldID, table string) dto.FilterGroup {
	return FilterByHotel(hotelID, table, dto.Filter{
		Field:    fieldID,
		Value:    id,
		Operator: dto.FilterOperatorEq,
		Table:    table,
	})
}

// BuildCacheKey joins a prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable key from list parameters and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	payload, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key payload")

		return BuildCacheKey(prefix, fmt.Sprintf("%d:%d", params.Page, params.Limit))
	}

	sum := sha256.Sum256(payload)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Failures are logged only; reads fall back to the store.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

package shared

import (
	"context"
	"drivent/shared/constant"
	"drivent/shared/dto"
	"drivent/shared/failure"
	"drivent/shared/timezone"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const (
	cacheKeySeparator = ":"
)

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return res, nil
}

// UserIDFromContext returns the authenticated user id set by the auth middleware.
func UserIDFromContext(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(int)
	if !ok || userID <= 0 {
		return 0, failure.Unauthorized("Missing authenticated user") // nolint:wrapcheck
	}

	return userID, nil
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
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

func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix

	for _, part := range parts {
		key += cacheKeySeparator + fmt.Sprint(part)
	}

	return key
}

// BuildCacheKeyWithQuery derives a stable key from paging params and the filter arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	_, args := filter.GetWhereClause()

	names := make([]string, 0, len(args))
	for name := range args {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := []any{params.Page, params.Limit, params.SortBy, params.SortDir}
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, args[name]))
	}

	return BuildCacheKey(prefix, parts...)
}

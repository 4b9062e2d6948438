package dto

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorLess      = "less"
	FilterOperatorGreater   = "greater"
	FilterOperatorNotIn     = "not_in"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLess:      "<",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreater:   ">",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one predicate on a column. Values are always bound as named arguments;
// ArgName overrides the argument name when the same field appears twice in a query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_in not_eq less_eq greater_eq less greater is_null is_not_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate and its arguments. An unknown operator renders nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, name := f.column(), f.argName()

	if symbol, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, symbol, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), args
	case FilterOperatorIn, FilterOperatorNotIn:
		keyword := "IN"
		if f.Operator == FilterOperatorNotIn {
			keyword = "NOT IN"
		}

		return fmt.Sprintf("%s %s (%s)", column, keyword, strings.Join(bindList(name, f.Value, args), ", ")), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// bindList adds one argument per element of value and returns their placeholders.
// A scalar binds as a single element.
func bindList(name string, value any, args map[string]any) []string {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		args[name] = value

		return []string{":" + name}
	}

	placeholders := make([]string, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		placeholders[idx] = ":" + key
	}

	return placeholders
}

// FilterGroup joins Filters, which hold Filter or FilterGroup values, with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		var where string

		var itemArgs map[string]any

		switch typed := item.(type) {
		case Filter:
			where, itemArgs = typed.GetWhereClause()
		case FilterGroup:
			where, itemArgs = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, itemArgs)
	}

	if len(parts) == 0 {
		return "", args
	}

	return "(" + strings.Join(parts, " "+f.Operator+" ") + ")", args
}

// EqualsFromQuery ANDs an equality filter for each field that has a non-empty value in the query string.
func EqualsFromQuery(values url.Values, table string, fields ...string) FilterGroup {
	group := FilterGroup{
		Operator: FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range fields {
		value := strings.TrimSpace(values.Get(field))
		if value == "" {
			continue
		}

		group.Filters = append(group.Filters, Filter{
			Field:    field,
			Operator: FilterOperatorEq,
			Value:    value,
			Table:    table,
		})
	}

	return group
}

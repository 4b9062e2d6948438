package dto_test

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"stayops/shared/constant"
	"stayops/shared/dto"
	"stayops/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "front-desk",
		ModifiedBy: "system",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "front-desk", metadata.CreatedBy)
	assert.Equal(t, "system", metadata.ModifiedBy)

	empty := &dto.Metadata{}
	empty.FromModel(model.Metadata{})

	assert.Equal(t, dto.Metadata{}, *empty)
}

func TestQueryParams_FromRequest(t *testing.T) {
	sortable := []string{"name", "city", "created_at"}

	tests := []struct {
		name           string
		query          url.Values
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all values given",
			query:    url.Values{"page": {"2"}, "limit": {"20"}, "sort_by": {"name"}, "sort_dir": {"asc"}},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			query:          url.Values{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:     "no defaults",
			query:    url.Values{},
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page and limit fall back",
			query:          url.Values{"page": {"x"}, "limit": {"-10"}},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:     "limit is capped",
			query:    url.Values{"limit": {"5000"}},
			expected: dto.QueryParams{Limit: dto.MaxValueLimit},
		},
		{
			name:     "unknown sort column is ignored",
			query:    url.Values{"sort_by": {"name; DROP TABLE bookings"}, "sort_dir": {"sideways"}},
			expected: dto.QueryParams{},
		},
		{
			name:           "sort column is case insensitive",
			query:          url.Values{"sort_by": {"City"}},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "city",
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/properties?"+tt.query.Encode(), nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest, sortable...)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
}

func TestFilter_GetWhereClause(t *testing.T) {
	checkIn := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "property_id", Value: "p1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.property_id = :property_id",
			wantArgs:  map[string]any{"property_id": "p1"},
		},
		{
			name:      "strict less with arg name",
			filter:    dto.Filter{ArgName: "check_in_before", Field: "check_in", Value: checkIn, Operator: dto.FilterOperatorLess},
			wantWhere: "check_in < :check_in_before",
			wantArgs:  map[string]any{"check_in_before": checkIn},
		},
		{
			name:      "strict greater",
			filter:    dto.Filter{Field: "check_out", Value: checkIn, Operator: dto.FilterOperatorGreater},
			wantWhere: "check_out > :check_out",
			wantArgs:  map[string]any{"check_out": checkIn},
		},
		{
			name:      "not in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"cancelled", "checked-out"}, Operator: dto.FilterOperatorNotIn},
			wantWhere: "status NOT IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "cancelled", "status_1": "checked-out"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0)",
			wantArgs:  map[string]any{"status_0": "pending"},
		},
		{
			name:      "in scalar is still bound",
			filter:    dto.Filter{Field: "status", Value: "pending); DROP TABLE bookings; --", Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status)",
			wantArgs:  map[string]any{"status": "pending); DROP TABLE bookings; --"},
		},
		{
			name:      "like is case insensitive",
			filter:    dto.Filter{Field: "name", Value: "Villa", Operator: dto.FilterOperatorLike, Table: "properties"},
			wantWhere: "LOWER(properties.name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%Villa%"},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "booking_id", Operator: dto.FilterIsNull},
			wantWhere: "booking_id IS NULL",
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

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "property_id", Value: "p1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "status_alt", Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(property_id = :property_id AND (status = :status OR status = :status_alt))", where)
	assert.Len(t, args, 3)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)

	// nested empty groups do not leave dangling operators
	sparse := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
			dto.Filter{Field: "city", Value: "Porto", Operator: dto.FilterOperatorEq},
		},
	}
	where, _ = sparse.GetWhereClause()
	assert.Equal(t, "(city = :city)", where)
}

func TestEqualsFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("status", "confirmed")
	values.Set("guest_id", "  ")
	values.Set("ignored", "x")

	group := dto.EqualsFromQuery(values, "bookings", "property_id", "guest_id", "status")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"status": "confirmed"}, args)

	empty := dto.EqualsFromQuery(url.Values{}, "bookings", "status")
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}

package model

import (
	"time"

	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
)

// Filter selects bookings from the store. Every field is optional except that
// a property or a guest must be named.
type Filter struct {
	PropertyID      string
	GuestID         string
	ExcludeID       string
	Statuses        []Status
	ExcludeStatuses []Status
	// CheckInBefore keeps bookings with check_in < the given date.
	CheckInBefore *time.Time
	// CheckOutAfter keeps bookings with check_out > the given date.
	CheckOutAfter *time.Time
}

func (f Filter) Validate() error {
	if f.PropertyID == constant.Empty && f.GuestID == constant.Empty {
		return failure.BadRequestFromString("booking filter requires a property or a guest") // nolint:wrapcheck
	}

	for _, s := range append(append([]Status{}, f.Statuses...), f.ExcludeStatuses...) {
		if !s.IsValid() {
			return failure.BadRequestFromString("booking filter has an unknown status: " + string(s)) // nolint:wrapcheck
		}
	}

	if f.CheckInBefore != nil && f.CheckOutAfter != nil && !f.CheckInBefore.After(*f.CheckOutAfter) {
		return failure.BadRequestFromString("booking filter window is empty") // nolint:wrapcheck
	}

	return nil
}

// FilterGroup translates f into the where-clause builder used by the repository.
func (f Filter) FilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.PropertyID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: FieldPropertyID, Value: f.PropertyID, Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.GuestID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: FieldGuestID, Value: f.GuestID, Operator: gDto.FilterOperatorEq, Table: TableName})
	}

	if f.ExcludeID != constant.Empty {
		filters = append(filters, gDto.Filter{ArgName: "exclude_id", Field: FieldID, Value: f.ExcludeID, Operator: gDto.FilterOperatorNotEq, Table: TableName})
	}

	if len(f.Statuses) > 0 {
		filters = append(filters, gDto.Filter{ArgName: "status_in", Field: FieldStatus, Value: statusValues(f.Statuses), Operator: gDto.FilterOperatorIn, Table: TableName})
	}

	if len(f.ExcludeStatuses) > 0 {
		filters = append(filters, gDto.Filter{ArgName: "status_not_in", Field: FieldStatus, Value: statusValues(f.ExcludeStatuses), Operator: gDto.FilterOperatorNotIn, Table: TableName})
	}

	if f.CheckInBefore != nil {
		filters = append(filters, gDto.Filter{ArgName: "check_in_before", Field: FieldCheckIn, Value: *f.CheckInBefore, Operator: gDto.FilterOperatorLess, Table: TableName})
	}

	if f.CheckOutAfter != nil {
		filters = append(filters, gDto.Filter{ArgName: "check_out_after", Field: FieldCheckOut, Value: *f.CheckOutAfter, Operator: gDto.FilterOperatorGreater, Table: TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func statusValues(statuses []Status) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	return values
}

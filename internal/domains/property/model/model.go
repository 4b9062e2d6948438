package model

import (
	"stayops/shared/constant"
	"stayops/shared/model"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldName        = "name"
	FieldCity        = "city"
	FieldBaseRate    = "base_rate"
	FieldWeekendRate = "weekend_rate"
	FieldWeeklyRate  = "weekly_rate"
	FieldMonthlyRate = "monthly_rate"
	FieldCleaningFee = "cleaning_fee"
	FieldMaxGuests   = "max_guests"
	FieldActive      = "active"
)

// SortableFields are the columns a list request may order by.
var SortableFields = []string{FieldName, FieldCity, FieldBaseRate, FieldMaxGuests, constant.FieldCreatedAt}

// Property is a rentable unit. A nil tiered rate means the base rate applies.
type Property struct {
	ID          string   `db:"id"`
	Name        string   `db:"name"`
	Address     string   `db:"address"`
	City        string   `db:"city"`
	Description string   `db:"description"`
	BaseRate    float64  `db:"base_rate"`
	WeekendRate *float64 `db:"weekend_rate"`
	WeeklyRate  *float64 `db:"weekly_rate"`
	MonthlyRate *float64 `db:"monthly_rate"`
	CleaningFee float64  `db:"cleaning_fee"`
	MaxGuests   int      `db:"max_guests"`
	Bedrooms    int      `db:"bedrooms"`
	Bathrooms   int      `db:"bathrooms"`
	Active      bool     `db:"active"`
	model.Metadata
}

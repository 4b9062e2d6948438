package model

import (
	"time"

	"stayops/shared/constant"
	"stayops/shared/model"
)

const (
	TableName  = "maintenance_logs"
	EntityName = "maintenance log"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldBookingID     = "booking_id"
	FieldTitle         = "title"
	FieldCategory      = "category"
	FieldPriority      = "priority"
	FieldStatus        = "status"
	FieldScheduledDate = "scheduled_date"
	FieldCost          = "cost"
	FieldCompletedAt   = "completed_at"
)

// SortableFields are the columns a list request may order by.
var SortableFields = []string{FieldScheduledDate, FieldPriority, FieldStatus, FieldCost, constant.FieldCreatedAt}

type MaintenanceLog struct {
	ID            string     `db:"id"`
	PropertyID    string     `db:"property_id"`
	BookingID     *string    `db:"booking_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Category      Category   `db:"category"`
	Priority      Priority   `db:"priority"`
	Status        Status     `db:"status"`
	ScheduledDate *time.Time `db:"scheduled_date"`
	Cost          float64    `db:"cost"`
	CompletedAt   *time.Time `db:"completed_at"`
	model.Metadata
}

type Category string

const (
	CategoryCleaning   Category = "cleaning"
	CategoryRepair     Category = "repair"
	CategoryInspection Category = "inspection"
	CategoryOther      Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryCleaning, CategoryRepair, CategoryInspection, CategoryOther:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

package dto

import (
	"time"

	"stayops/internal/domains/maintenance/model"
	"stayops/shared"
	"stayops/shared/daterange"
	gDto "stayops/shared/dto"
	gModel "stayops/shared/model"
	"stayops/shared/timezone"

	"github.com/google/uuid"
)

type CreateMaintenanceRequest struct {
	PropertyID    string         `json:"property_id"    validate:"required"`
	BookingID     *string        `json:"booking_id"     validate:"omitempty"`
	Title         string         `json:"title"          validate:"required,max=255"`
	Description   string         `json:"description"    validate:"omitempty,max=2000"`
	Category      model.Category `json:"category"       validate:"required,enum"`
	Priority      model.Priority `json:"priority"       validate:"omitempty,enum"`
	ScheduledDate string         `json:"scheduled_date" validate:"omitempty,date"`
	Cost          float64        `json:"cost"           validate:"gte=0"`
}

func (c *CreateMaintenanceRequest) ToModel(user string) (model.MaintenanceLog, error) {
	priority := model.PriorityMedium
	if c.Priority != "" {
		priority = c.Priority
	}

	var scheduled *time.Time

	if c.ScheduledDate != "" {
		d, err := daterange.ParseDate(c.ScheduledDate)
		if err != nil {
			return model.MaintenanceLog{}, err
		}

		scheduled = &d
	}

	return model.MaintenanceLog{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		BookingID:     c.BookingID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      c.Category,
		Priority:      priority,
		Status:        model.StatusOpen,
		ScheduledDate: scheduled,
		Cost:          c.Cost,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

// UpdateMaintenanceRequest cannot complete a log; Complete does that.
type UpdateMaintenanceRequest struct {
	Title         *string         `db:"title"          json:"title"          validate:"omitempty,max=255"`
	Description   *string         `db:"description"    json:"description"    validate:"omitempty,max=2000"`
	Category      *model.Category `db:"category"       json:"category"       validate:"omitempty,enum"`
	Priority      *model.Priority `db:"priority"       json:"priority"       validate:"omitempty,enum"`
	Status        *model.Status   `db:"status"         json:"status"         validate:"omitempty,enum,ne=completed"`
	ScheduledDate *string         `db:"scheduled_date" json:"scheduled_date" validate:"omitempty,date"`
	Cost          *float64        `db:"cost"           json:"cost"           validate:"omitempty,gte=0"`
}

type CompleteMaintenanceRequest struct {
	Cost *float64 `json:"cost" validate:"omitempty,gte=0"`
}

type MaintenanceResponse struct {
	ID            string         `json:"id"`
	PropertyID    string         `json:"property_id"`
	BookingID     *string        `json:"booking_id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      model.Category `json:"category"`
	Priority      model.Priority `json:"priority"`
	Status        model.Status   `json:"status"`
	ScheduledDate *string        `json:"scheduled_date"`
	Cost          float64        `json:"cost"`
	CompletedAt   *time.Time     `json:"completed_at"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(model model.MaintenanceLog) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.BookingID = model.BookingID
	r.Title = model.Title
	r.Description = model.Description
	r.Category = model.Category
	r.Priority = model.Priority
	r.Status = model.Status
	r.Cost = model.Cost
	r.CompletedAt = model.CompletedAt
	r.Metadata.FromModel(model.Metadata)

	if model.ScheduledDate != nil {
		scheduled := daterange.Format(*model.ScheduledDate)
		r.ScheduledDate = &scheduled
	}
}

type GetMaintenanceLogsResponse struct {
	MaintenanceLogs []MaintenanceResponse `json:"maintenance_logs"`
	TotalPage       int                   `json:"total_page"`
	TotalData       int                   `json:"total_data"`
}

func (r *GetMaintenanceLogsResponse) FromModels(models []model.MaintenanceLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MaintenanceLogs = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.MaintenanceLogs[i].FromModel(mod)
	}
}

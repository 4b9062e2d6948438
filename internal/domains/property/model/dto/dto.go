package dto

import (
	"stayops/internal/domains/property/model"
	"stayops/shared"
	gDto "stayops/shared/dto"
	gModel "stayops/shared/model"
	"stayops/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name        string   `json:"name"         validate:"required,max=150"`
	Address     string   `json:"address"      validate:"omitempty,max=255"`
	City        string   `json:"city"         validate:"omitempty,max=100"`
	Description string   `json:"description"  validate:"omitempty"`
	BaseRate    float64  `json:"base_rate"    validate:"gte=0"`
	WeekendRate *float64 `json:"weekend_rate" validate:"omitempty,gte=0"`
	WeeklyRate  *float64 `json:"weekly_rate"  validate:"omitempty,gte=0"`
	MonthlyRate *float64 `json:"monthly_rate" validate:"omitempty,gte=0"`
	CleaningFee float64  `json:"cleaning_fee" validate:"gte=0"`
	MaxGuests   int      `json:"max_guests"   validate:"required,gte=1"`
	Bedrooms    int      `json:"bedrooms"     validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms"    validate:"gte=0"`
	Active      *bool    `json:"active"       validate:"omitempty"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Property{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Address:     c.Address,
		City:        c.City,
		Description: c.Description,
		BaseRate:    c.BaseRate,
		WeekendRate: c.WeekendRate,
		WeeklyRate:  c.WeeklyRate,
		MonthlyRate: c.MonthlyRate,
		CleaningFee: c.CleaningFee,
		MaxGuests:   c.MaxGuests,
		Bedrooms:    c.Bedrooms,
		Bathrooms:   c.Bathrooms,
		Active:      active,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdatePropertyRequest only touches the fields that are present.
type UpdatePropertyRequest struct {
	Name        string   `db:"name"         json:"name"         validate:"omitempty,max=150"`
	Address     string   `db:"address"      json:"address"      validate:"omitempty,max=255"`
	City        string   `db:"city"         json:"city"         validate:"omitempty,max=100"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	BaseRate    *float64 `db:"base_rate"    json:"base_rate"    validate:"omitempty,gte=0"`
	WeekendRate *float64 `db:"weekend_rate" json:"weekend_rate" validate:"omitempty,gte=0"`
	WeeklyRate  *float64 `db:"weekly_rate"  json:"weekly_rate"  validate:"omitempty,gte=0"`
	MonthlyRate *float64 `db:"monthly_rate" json:"monthly_rate" validate:"omitempty,gte=0"`
	CleaningFee *float64 `db:"cleaning_fee" json:"cleaning_fee" validate:"omitempty,gte=0"`
	MaxGuests   *int     `db:"max_guests"   json:"max_guests"   validate:"omitempty,gte=1"`
	Bedrooms    *int     `db:"bedrooms"     json:"bedrooms"     validate:"omitempty,gte=0"`
	Bathrooms   *int     `db:"bathrooms"    json:"bathrooms"    validate:"omitempty,gte=0"`
	Active      *bool    `db:"active"       json:"active"       validate:"omitempty"`
}

type PropertyResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	BaseRate    float64  `json:"base_rate"`
	WeekendRate *float64 `json:"weekend_rate"`
	WeeklyRate  *float64 `json:"weekly_rate"`
	MonthlyRate *float64 `json:"monthly_rate"`
	CleaningFee float64  `json:"cleaning_fee"`
	MaxGuests   int      `json:"max_guests"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Active      bool     `json:"active"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.Description = model.Description
	r.BaseRate = model.BaseRate
	r.WeekendRate = model.WeekendRate
	r.WeeklyRate = model.WeeklyRate
	r.MonthlyRate = model.MonthlyRate
	r.CleaningFee = model.CleaningFee
	r.MaxGuests = model.MaxGuests
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}

package dto

import (
	"strings"

	"stayops/internal/domains/guest/model"
	"stayops/shared"
	gDto "stayops/shared/dto"
	gModel "stayops/shared/model"
	"stayops/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=50"`
	Notes     string `json:"notes"      validate:"omitempty,max=2000"`
}

func (r *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:     r.Phone,
		Notes:     r.Notes,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateGuestRequest struct {
	FirstName *string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Email     *string `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	Phone     *string `db:"phone"      json:"phone"      validate:"omitempty,max=50"`
	Notes     *string `db:"notes"      json:"notes"      validate:"omitempty,max=2000"`
}

// Normalize lowercases the email so uniqueness does not depend on case.
func (r *UpdateGuestRequest) Normalize() {
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
	}
}

type GuestResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.Email = model.Email
	r.Phone = model.Phone
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

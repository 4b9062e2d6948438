package model

import (
	"stayops/shared/constant"
	"stayops/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
)

// SortableFields are the columns a list request may order by.
var SortableFields = []string{FieldLastName, FieldEmail, constant.FieldCreatedAt}

type Guest struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Notes     string `db:"notes"`
	model.Metadata
}

func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}

	return g.FirstName + " " + g.LastName
}

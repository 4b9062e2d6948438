package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayops/infras/otel"
	"stayops/infras/postgres"
	"stayops/internal/domains/maintenance/model"
	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
	gRepo "stayops/shared/repository"
)

type Maintenance interface {
	Insert(ctx context.Context, model model.MaintenanceLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceLog, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ExistsForBooking(ctx context.Context, bookingID string, category model.Category) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MaintenanceLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MaintenanceLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, log model.MaintenanceLog) error {
	return translate(r.Repository.Insert(ctx, log))
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return translate(r.Repository.Update(ctx, req, filter))
}

// ExistsForBooking reports whether a log of category already references bookingID.
func (r *repositoryImpl) ExistsForBooking(ctx context.Context, bookingID string, category model.Category) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".maintenance.ExistsForBooking")
	defer scope.End()

	exist, err := r.Exist(ctx, ForBooking(bookingID, category))
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check maintenance for booking: %w", err)
	}

	return exist, nil
}

func ForBooking(bookingID string, category model.Category) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldCategory, Value: string(category), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

const errDuplicateForBooking = "a maintenance log of this category already exists for the booking"

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case gRepo.IsPqError(err, constant.PqErrorCodeUniqueViolation):
		return failure.Conflict(errDuplicateForBooking) // nolint:wrapcheck
	case gRepo.IsPqError(err, constant.PqErrorCodeFkViolation):
		return failure.BadRequestFromString("maintenance log references an unknown property or booking") // nolint:wrapcheck
	default:
		return err
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayops/infras/otel"
	"stayops/infras/postgres"
	"stayops/internal/domains/booking/model"
	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
	gRepo "stayops/shared/repository"
)

const errOverlap = "property is already booked for the requested dates"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	ListBookings(ctx context.Context, filter model.Filter) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert surfaces the overlap exclusion constraint as a Conflict.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	return translate(r.Repository.Insert(ctx, booking))
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return translate(r.Repository.Update(ctx, req, filter))
}

func (r *repositoryImpl) UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error) {
	affected, err := r.Repository.UpdateAffected(ctx, req, filter)

	return affected, translate(err)
}

// ListBookings returns the bookings matching filter ordered by check-in ascending.
func (r *repositoryImpl) ListBookings(ctx context.Context, filter model.Filter) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListBookings")
	defer scope.End()

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCheckIn, SortDir: gDto.SortDirAsc}

	bookings, err := r.GetAll(ctx, params, filter.FilterGroup())
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	if gRepo.IsPqError(err, constant.PqErrorCodeExclusionViolation) {
		return failure.Conflict(errOverlap) // nolint:wrapcheck
	}

	if gRepo.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return failure.BadRequestFromString("booking references an unknown property or guest") // nolint:wrapcheck
	}

	return err
}

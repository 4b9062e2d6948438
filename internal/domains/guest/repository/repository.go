package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"stayops/infras/otel"
	"stayops/infras/postgres"
	"stayops/internal/domains/guest/model"
	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
	gRepo "stayops/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, guest model.Guest) error {
	return translate(r.Repository.Insert(ctx, guest))
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	return translate(r.Repository.Update(ctx, req, filter))
}

func (r *repositoryImpl) Delete(ctx context.Context, filter gDto.FilterGroup) error {
	return translate(r.Repository.Delete(ctx, filter))
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case gRepo.IsPqError(err, constant.PqErrorCodeUniqueViolation):
		return failure.Conflict("email already registered") // nolint:wrapcheck
	case gRepo.IsPqError(err, constant.PqErrorCodeFkViolation):
		return failure.Conflict("guest still has bookings") // nolint:wrapcheck
	default:
		return err
	}
}

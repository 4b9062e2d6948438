package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"stayops/infras/otel"
	"stayops/infras/postgres"
	"stayops/shared/constant"
	"stayops/shared/dto"
	"stayops/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
	errEmptyUpdate    = errors.New("nothing to update")
)

// IsPqError reports whether err wraps a postgres error with the given SQLSTATE code.
func IsPqError(err error, code string) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}

// Repository is the table gateway shared by the domain repositories. Columns come from
// the db tags of T, including the tags of embedded structs.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       dbColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

func (repo *Repository[T]) fail(scope otel.Scope, op string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("%s %s: %w", op, repo.entity, err)
}

// read prepares query on the read pool and hands the statement to fn.
func (repo *Repository[T]) read(ctx context.Context, op, query string, fn func(*sqlx.NamedStmt) error) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, op, err)
	}
	defer stmt.Close()

	if err = fn(stmt); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return repo.fail(scope, op, err)
	}

	return nil
}

// write runs query on the write pool and returns the affected row count.
func (repo *Repository[T]) write(ctx context.Context, op, query string, arg any) (int64, error) {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, repo.fail(scope, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, op, err)
	}

	return affected, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	_, err := repo.write(ctx, "Insert", repo.insertQuery(), model)

	return err
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where)

	err := repo.read(ctx, "Exist", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args) //nolint:wrapcheck
	})

	return exist, err
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	var model T

	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectList(columns...), repo.table, where)

	err := repo.read(ctx, "Get", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args) //nolint:wrapcheck
	})

	return model, err
}

// GetAll pages through the rows matching filter. The primary column breaks ordering
// ties so consecutive pages never overlap.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	var query strings.Builder

	fmt.Fprintf(&query, "SELECT %s FROM %s%s", repo.selectList(columns...), repo.table, where)

	if params.SortBy != "" && params.SortDir != "" {
		fmt.Fprintf(&query, " ORDER BY %s %s, %s.%s", params.SortBy, params.SortDir, repo.table, repo.primaryColumn)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		query.WriteString(" LIMIT :limit OFFSET :offset")
	}

	var models []T

	err := repo.read(ctx, "GetAll", query.String(), func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args) //nolint:wrapcheck
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	var count int

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primaryColumn, repo.table, where)

	err := repo.read(ctx, "Count", query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args) //nolint:wrapcheck
	})

	return count, err
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	_, err := repo.write(ctx, "Delete", fmt.Sprintf("DELETE FROM %s%s", repo.table, where), args)

	return err
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.UpdateAffected(ctx, mod, filter)

	return err
}

// UpdateAffected behaves like Update and reports how many rows matched the filter.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	if len(mod) == 0 {
		return 0, errEmptyUpdate
	}

	// filter arguments win over a field of the same name
	merged := make(map[string]any, len(mod)+len(args))
	maps.Copy(merged, mod)
	maps.Copy(merged, args)

	return repo.write(ctx, "Update", repo.updateQuery(mod, where), merged)
}

// BuildWhereClause renders filter as a leading " WHERE ..." clause, or "" when it is empty.
func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) updateQuery(mod map[string]any, where string) string {
	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, col+" = :"+col)
	}

	return fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)
}

// selectList qualifies the requested columns with the table name. No columns means all of them.
func (repo *Repository[T]) selectList(columns ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(columns) > 0 && !slices.Contains(columns, col) {
			continue
		}

		selected = append(selected, repo.table+"."+col)
	}

	return strings.Join(selected, ", ")
}

func dbColumns(reflectType reflect.Type) []string {
	var columns []string

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

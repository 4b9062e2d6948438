package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	otelMocks "stayops/infras/otel/mocks"
	"stayops/internal/domains/booking/model"
	"stayops/shared/constant"
	"stayops/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	overlap := fmt.Errorf("insert: %w", &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
	fk := &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)}
	other := errors.New("connection reset")

	assert.NoError(t, translate(nil))
	assert.True(t, failure.IsConflict(translate(overlap)))
	assert.Equal(t, errOverlap, translate(overlap).Error())
	assert.True(t, failure.IsValidation(translate(fk)))
	assert.Equal(t, other, translate(other))
}

func TestListBookings_RejectsFilterBeforeQuerying(t *testing.T) {
	// no connection: a query attempt would panic
	repo := New(nil, otelMocks.NewOtel())

	_, err := repo.ListBookings(context.Background(), model.Filter{})
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))

	_, err = repo.ListBookings(context.Background(), model.Filter{PropertyID: "p1", Statuses: []model.Status{"archived"}})
	require.Error(t, err)
	assert.True(t, failure.IsValidation(err))
}

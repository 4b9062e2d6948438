package repository

import (
	"errors"
	"fmt"
	"testing"

	"stayops/shared/constant"
	"stayops/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
	fk := &pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)}
	other := errors.New("connection reset")

	assert.NoError(t, translate(nil))
	assert.True(t, failure.IsConflict(translate(unique)))
	assert.True(t, failure.IsConflict(translate(fk)))
	assert.Equal(t, other, translate(other))
}

package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create device")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	// Raw driver error as PostgreSQL reports a 23502 violation
	pgErr := errors.New(`ERROR: null value in column "token" of relation "devices" violates not-null constraint (SQLSTATE 23502)`)
	assert.True(t, isNotNullConstraintViolation(pgErr))

	assert.True(t, isNotNullConstraintViolation(errors.New("SQLSTATE 23502")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrInvalidValue))
}

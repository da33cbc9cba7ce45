package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassifiers(t *testing.T) {
	wrap := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert")
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap(pgCheckViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrap(pgForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isNotNullConstraintViolation(wrap(pgNotNullViolation)))
	assert.False(t, isNotNullConstraintViolation(errors.New("not null but not postgres")))

	assert.True(t, isCheckConstraintViolation(wrap(pgCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.Empty(t, pgErrorCode(errors.New("plain")))
}

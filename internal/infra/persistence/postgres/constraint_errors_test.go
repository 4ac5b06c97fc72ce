package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueConstraintViolation(wrap(pgCodeUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrap(pgCodeCheckViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrap(pgCodeForeignKeyViolation)))
	assert.True(t, isNotNullConstraintViolation(wrap(pgCodeNotNullViolation)))
	assert.True(t, isCheckConstraintViolation(wrap(pgCodeCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.Empty(t, pgErrorCode(fmt.Errorf("plain")))
}

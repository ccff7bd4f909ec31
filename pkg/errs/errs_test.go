package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB("noop", nil))

	err := FromDB("gram.create", gorm.ErrForeignKeyViolated)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.False(t, IsPersistence(err))

	err = FromDB("bookmark.create", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = FromDB("gram.delete", ErrNotFoundOrUnauthorized)
	assert.Same(t, ErrNotFoundOrUnauthorized, err)

	boom := errors.New("connection refused")
	err = FromDB("stats.incr", boom)
	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "stats.incr: connection refused", err.Error())

	// 已经包装过的错误不重复包装
	again := FromDB("outer", err)
	var pe *PersistenceError
	assert.True(t, errors.As(again, &pe))
	assert.Equal(t, "stats.incr", pe.Op)
}

package errs

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrReferenceNotFound 写入引用了不存在的用户/书籍/gram（外键约束失败）
	ErrReferenceNotFound = errors.New("referenced entity does not exist")
	// ErrAlreadyExists 唯一约束冲突，例如重复收藏
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFoundOrUnauthorized 更新/删除影响 0 行：目标不存在或不属于调用者，两者不区分
	ErrNotFoundOrUnauthorized = errors.New("not found or unauthorized")
	// ErrUnauthorized 调用者身份或角色不满足要求
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInUse 删除的记录仍被引用
	ErrInUse = errors.New("still referenced")
)

// PersistenceError 其他存储层错误，只记录并返回 500，不做自动重试
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// FromDB 把 gorm 返回的错误翻译为领域错误
// 依赖 gorm.Config.TranslateError 将驱动错误码统一为 gorm.ErrForeignKeyViolated / gorm.ErrDuplicatedKey
func FromDB(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrReferenceNotFound),
		errors.Is(err, ErrAlreadyExists),
		errors.Is(err, ErrNotFoundOrUnauthorized),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInUse):
		return err
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, ErrReferenceNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence 判断是否为需要按 500 处理的存储错误
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Repo 通用仓储，具体 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// DB 返回带 ctx 的会话，ctx 中存在事务时使用事务连接
func (r *Repo[T]) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.Db.WithContext(ctx)
}

// Transaction 在事务中执行 fn，fn 内通过 ctx 访问的 DAO 共享同一事务；已在事务中时直接执行
func (r *Repo[T]) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return r.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// FindById 按主键查询，不存在时返回 nil, nil
func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	return r.FindByWhere(ctx, "id = ?", id)
}

// FindByWhere 条件查询单条，不存在时返回 nil, nil
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.DB(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	n, err := r.FindCount(ctx, where, args...)
	return n > 0, err
}

func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var n int64
	err := r.DB(ctx).Model(new(T)).Where(where, args...).Count(&n).Error
	return n, err
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.DB(ctx).Create(item).Error
}

// UpdateByWhere 条件更新，返回影响行数
func (r *Repo[T]) UpdateByWhere(ctx context.Context, data map[string]any, where string, args ...any) (int64, error) {
	res := r.DB(ctx).Model(new(T)).Where(where, args...).Updates(data)
	return res.RowsAffected, res.Error
}

// DeleteByWhere 条件删除，返回影响行数
func (r *Repo[T]) DeleteByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.DB(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

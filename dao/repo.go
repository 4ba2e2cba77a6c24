package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类 各表 DAO 内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, value *T) error {
	return r.Db.WithContext(ctx).Create(value).Error
}

func (r Repo[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	var value T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	var value T
	err := r.Db.WithContext(ctx).Model(&value).Where(query, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Transaction(ctx context.Context, f func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(f)
}

package dao

import (
	"context"
	"errors"

	"SmartNotes/models"
	"SmartNotes/pkg/snowflake"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// GetOrCreate 按 (name, owner) 幂等获取 name 由调用方归一化
func (d *CategoryDAO) GetOrCreate(ctx context.Context, ownerID uint64, name string) (*models.Category, error) {
	var category models.Category
	err := d.Db.WithContext(ctx).
		Where("name = ? AND owner_id = ?", name, ownerID).
		Attrs(models.Category{ID: uint64(snowflake.GenID()), Name: name, OwnerID: ownerID}).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (d *CategoryDAO) ListByOwner(ctx context.Context, ownerID uint64) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// FindOwned 归属校验 不属于该用户时视同不存在
func (d *CategoryDAO) FindOwned(ctx context.Context, id, ownerID uint64) (*models.Category, error) {
	var category models.Category
	err := d.Db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

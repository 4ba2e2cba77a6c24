package dao

import (
	"context"
	"errors"

	"SmartNotes/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// FindByEmail 不存在返回 nil
func (d *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := d.Db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *UserDAO) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return d.IsExist(ctx, "username = ?", username)
}

func (d *UserDAO) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return d.IsExist(ctx, "email = ?", email)
}

// UpdateProfileURL 设置页唯一可写字段
func (d *UserDAO) UpdateProfileURL(ctx context.Context, userID uint64, profileURL string) error {
	return d.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_url", profileURL).Error
}

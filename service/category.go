package service

import (
	"context"

	"SmartNotes/dao"
	"SmartNotes/models"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	List(ctx context.Context, ownerID uint64) ([]*models.Category, error)
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
}

func (s *CategoryService) List(ctx context.Context, ownerID uint64) ([]*models.Category, error) {
	return s.CategoryDAO.ListByOwner(ctx, ownerID)
}

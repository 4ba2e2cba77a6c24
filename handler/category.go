package handler

import (
	"SmartNotes/config"
	"SmartNotes/middleware"
	"SmartNotes/pkg/context"
	"SmartNotes/pkg/response"
	"SmartNotes/service"
	"SmartNotes/types"

	"github.com/gin-gonic/gin"
)

type Category struct {
	Config          *config.Config
	CategoryService service.ICategoryService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/categories", middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.List))
}

func (h *Category) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	categories, err := h.CategoryService.List(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		response.Empty(c, "No categories found")
		return nil
	}

	dtos := make([]*types.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, &types.CategoryDTO{Name: category.Name})
	}
	response.Success(c, dtos)
	return nil
}

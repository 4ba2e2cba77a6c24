package handler

import (
	"net/http"

	"SmartNotes/config"
	"SmartNotes/middleware"
	"SmartNotes/pkg/context"
	"SmartNotes/pkg/response"
	"SmartNotes/service"
	"SmartNotes/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/setting", middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.Profile))
	g.PATCH("", context.Wrap(h.UpdateProfile))
}

func (h *User) Profile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request payload: "+err.Error())
	}

	profile, err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

package handler

import (
	"net/http"
	"strconv"

	"SmartNotes/config"
	"SmartNotes/middleware"
	"SmartNotes/pkg/context"
	"SmartNotes/pkg/response"
	"SmartNotes/pkg/utils"
	"SmartNotes/service"
	"SmartNotes/types"

	"github.com/gin-gonic/gin"
)

type Version struct {
	Config         *config.Config
	VersionService service.IVersionService
}

func (h *Version) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/note/:id", middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.POST("/draft", context.Wrap(h.SaveDraft))
	g.GET("/versions", context.Wrap(h.List))
	g.POST("/restore", context.Wrap(h.Restore))
}

func (h *Version) SaveDraft(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req types.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request payload: "+err.Error())
	}

	draft, err := h.VersionService.SaveDraft(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}

	response.Created(c, utils.VersionToDTO(draft))
	return nil
}

func (h *Version) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	limit := types.DefaultVersionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.NewError(http.StatusBadRequest, "invalid limit parameter")
		}
		limit = parsed
	}

	versions, err := h.VersionService.List(c.Request.Context(), userID, id, limit)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		response.Empty(c, "No versions found")
		return nil
	}

	response.Success(c, utils.VersionsToDTO(versions))
	return nil
}

func (h *Version) Restore(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req types.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request payload: "+err.Error())
	}

	note, err := h.VersionService.Restore(c.Request.Context(), userID, id, req.VersionID)
	if err != nil {
		return err
	}

	response.Success(c, utils.NoteToDTO(note))
	return nil
}

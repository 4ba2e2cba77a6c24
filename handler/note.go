package handler

import (
	"fmt"
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

type Note struct {
	Config         *config.Config
	NoteService    service.INoteService
	VersionService service.IVersionService
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	notes := r.Group("/v1/notes", authorize)
	notes.POST("", context.Wrap(h.Create))
	notes.GET("", context.Wrap(h.List))
	notes.GET("/search/tag/:tag", context.Wrap(h.SearchByTag))
	notes.GET("/search/category/:name", context.Wrap(h.SearchByCategory))
	notes.DELETE("/bulkdelete/tag/:tag", context.Wrap(h.BulkDeleteByTag))
	notes.DELETE("/bulkdelete/category/:name", context.Wrap(h.BulkDeleteByCategory))

	note := r.Group("/v1/note", authorize)
	note.GET("/:id", context.Wrap(h.Get))
	note.PUT("/:id", context.Wrap(h.Update))
	note.DELETE("/:id", context.Wrap(h.Delete))
}

// noteID 解析路径参数 非法一律按 404 处理 不暴露存在性
func noteID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewNotFound("Note not found")
	}
	return id, nil
}

func (h *Note) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request payload: "+err.Error())
	}

	note, err := h.NoteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	response.Created(c, utils.NoteToDTO(note))
	return nil
}

func (h *Note) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.NoteService.ListNotes(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		response.Empty(c, "No notes found")
		return nil
	}

	response.Success(c, types.ListNotesResponse{
		Notes: utils.NotesToDTO(notes),
		Total: len(notes),
	})
	return nil
}

func (h *Note) Get(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	note, err := h.NoteService.GetNote(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}

	response.Success(c, utils.NoteToDTO(note))
	return nil
}

func (h *Note) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	var req types.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request payload: "+err.Error())
	}

	note, err := h.NoteService.UpdateNote(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	// 更新落库后追加一条版本快照 供后续回滚
	if _, err := h.VersionService.Record(c.Request.Context(), note, false); err != nil {
		return err
	}

	response.Success(c, utils.NoteToDTO(note))
	return nil
}

func (h *Note) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	id, err := noteID(c)
	if err != nil {
		return err
	}

	if err := h.NoteService.DeleteNote(c.Request.Context(), userID, id); err != nil {
		return err
	}

	response.Deleted(c, "Note deleted")
	return nil
}

func (h *Note) SearchByTag(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.NoteService.SearchByTag(c.Request.Context(), userID, c.Param("tag"))
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		response.Empty(c, "No notes found with the given tag")
		return nil
	}

	response.Success(c, utils.NotesToDTO(notes))
	return nil
}

func (h *Note) SearchByCategory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.NoteService.SearchByCategory(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		response.Empty(c, "No notes found with the given category")
		return nil
	}

	response.Success(c, utils.NotesToDTO(notes))
	return nil
}

func (h *Note) BulkDeleteByTag(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.NoteService.DeleteByTag(c.Request.Context(), userID, c.Param("tag"))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return response.NewNotFound("No notes found with the given tag")
	}

	response.Deleted(c, fmt.Sprintf("%d notes deleted", deleted))
	return nil
}

func (h *Note) BulkDeleteByCategory(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.NoteService.DeleteByCategory(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return response.NewNotFound("No notes found with the given category")
	}

	response.Deleted(c, fmt.Sprintf("%d notes deleted", deleted))
	return nil
}

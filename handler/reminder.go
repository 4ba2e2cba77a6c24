package handler

import (
	"time"

	"SmartNotes/config"
	"SmartNotes/middleware"
	"SmartNotes/pkg/context"
	"SmartNotes/pkg/response"
	"SmartNotes/service"

	"github.com/gin-gonic/gin"
)

type Reminder struct {
	Config          *config.Config
	ReminderService service.IReminderService
}

func (h *Reminder) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/reminders", middleware.Auth([]byte(h.Config.Jwt.Secret)))
	g.GET("", context.Wrap(h.Classify))
}

func (h *Reminder) Classify(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	buckets, err := h.ReminderService.Classify(c.Request.Context(), userID, time.Now())
	if err != nil {
		return err
	}

	response.Success(c, buckets)
	return nil
}

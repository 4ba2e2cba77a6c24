package context

import (
	"errors"
	"net/http"

	"SmartNotes/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Status:  response.StatusError,
					Message: be.Msg,
					Errors:  be.Fields,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Status:  response.StatusError,
				Message: err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id not found in context")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id has unexpected type")
	}

	return uid, nil
}

func GetEmail(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxEmail)
	if !ok {
		return "", errors.New("email not found in context")
	}

	email, ok := v.(string)
	if !ok {
		return "", errors.New("email has unexpected type")
	}

	return email, nil
}

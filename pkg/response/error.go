package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code   int
	Msg    string
	Fields map[string]string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// NewFieldError 字段级校验错误 整体 400
func NewFieldError(fields map[string]string) *BizError {
	return &BizError{
		Code:   http.StatusBadRequest,
		Msg:    "validation failed",
		Fields: fields,
	}
}

func NewNotFound(msg string) *BizError {
	return &BizError{
		Code: http.StatusNotFound,
		Msg:  msg,
	}
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Status:  StatusError,
					Message: "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				c.JSON(be.Code, Response{
					Status:  StatusError,
					Message: be.Msg,
					Errors:  be.Fields,
				})
			} else {
				Fail(c, http.StatusInternalServerError, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Status:  StatusError,
		Message: msg,
	})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应状态 统一的三态信封
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusEmpty   = "empty"
)

type Response struct {
	Status  string            `json:"status"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

// Created 创建成功 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status: StatusSuccess,
		Data:   data,
	})
}

// Deleted 删除成功 204
func Deleted(c *gin.Context, msg string) {
	c.JSON(http.StatusNoContent, Response{
		Status:  StatusSuccess,
		Message: msg,
	})
}

// Empty 空集合 区别于错误
func Empty(c *gin.Context, msg string) {
	c.JSON(http.StatusNoContent, Response{
		Status:  StatusEmpty,
		Message: msg,
	})
}

func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Status:  StatusError,
		Message: msg,
	})
}

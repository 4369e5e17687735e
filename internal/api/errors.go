package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medialog/internal/entity/common"
)

// 错误响应维持历史扁平契约：{"error": "..."}。
// 校验/未找到错误返回具体原因，存储层意外错误只返回通用信息。

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// respondStoreError 将存储层错误映射为响应：校验错误 400 带具体信息，
// 其余记录日志并返回通用 500。
func respondStoreError(c *gin.Context, err error, logMessage string) {
	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		BadRequest(c, validationErr.Message)
		return
	}
	logrus.WithError(err).Error(logMessage)
	InternalError(c, "internal server error")
}

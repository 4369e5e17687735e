package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medialog/internal/entity"
	"medialog/internal/entity/converter"
)

// ListTags 返回全部标签，按名称字母序。响应为扁平数组（历史契约）。
func (h *HTTPHandler) ListTags(c *gin.Context) {
	if h.repo == nil {
		c.JSON(http.StatusOK, []entity.Tag{})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	tags, err := h.repo.ListTags(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list tags")
		InternalError(c, "failed to load tags")
		return
	}

	c.JSON(http.StatusOK, converter.TagsToDTOs(tags))
}

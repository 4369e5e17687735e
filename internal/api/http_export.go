package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medialog/internal/entity"
)

const exportTimeout = 60 * time.Second

// CreateExport 将完整媒体日志导出为 JSON 快照并写入配置的存储后端。
func (h *HTTPHandler) CreateExport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), exportTimeout)
	defer cancel()

	key, count, err := h.exportService.ExportSnapshot(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to export snapshot")
		InternalError(c, "failed to export media log")
		return
	}

	c.JSON(http.StatusCreated, entity.ExportResponse{
		Key:     key,
		Count:   count,
		Message: "Export completed successfully",
	})
}

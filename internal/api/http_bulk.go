package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medialog/internal/entity"
)

// bulkRequestTimeout 批量导入比单条操作宽松一些。
const bulkRequestTimeout = 30 * time.Second

// BulkCreateMedia 在单个事务内批量导入媒体条目，逐条记录成败。
// 全部成功返回 201，存在失败条目（含全部失败）返回 207。
func (h *HTTPHandler) BulkCreateMedia(c *gin.Context) {
	var req entity.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request payload")
		return
	}

	// 越界批次在触碰存储前拒绝
	if len(req.Items) == 0 {
		BadRequest(c, "items must not be empty")
		return
	}
	if len(req.Items) > entity.BulkMaxItems {
		BadRequest(c, fmt.Sprintf("too many items: %d, maximum is %d", len(req.Items), entity.BulkMaxItems))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), bulkRequestTimeout)
	defer cancel()

	result, err := h.repo.BulkCreateMedia(ctx, req.Items)
	if err != nil {
		respondStoreError(c, err, "bulk media import failed")
		return
	}

	if result.AllSucceeded() {
		c.JSON(http.StatusCreated, entity.BulkResponse{
			Message: "All media entries added successfully",
			Results: *result,
		})
		return
	}

	c.JSON(http.StatusMultiStatus, entity.BulkResponse{
		Message: fmt.Sprintf("%d of %d media entries added", len(result.Success), result.Total),
		Results: *result,
	})
}

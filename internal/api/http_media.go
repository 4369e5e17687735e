package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"medialog/internal/entity"
	"medialog/internal/entity/converter"
)

const requestTimeout = 5 * time.Second

// ListMedia 返回与指定年份重叠的媒体条目，按开始日期升序。
// 响应为扁平数组，标签以 ", " 连接（历史契约）。
func (h *HTTPHandler) ListMedia(c *gin.Context) {
	rawYear := strings.TrimSpace(c.Query("year"))
	year := time.Now().Year()
	if rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil || parsed <= 0 {
			BadRequest(c, "invalid year")
			return
		}
		year = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	media, err := h.repo.QueryMediaByYear(ctx, year)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Error("failed to query media by year")
		InternalError(c, "failed to load media entries")
		return
	}

	c.JSON(http.StatusOK, converter.MediaToItems(media))
}

// CreateMedia 新增一条媒体条目。
func (h *HTTPHandler) CreateMedia(c *gin.Context) {
	var payload entity.MediaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := h.repo.CreateMedia(ctx, &payload)
	if err != nil {
		respondStoreError(c, err, "failed to create media entry")
		return
	}

	c.JSON(http.StatusCreated, entity.MutationResponse{
		ID:      id,
		Message: "Media entry added successfully",
	})
}

// UpdateMedia 整体覆盖一条媒体条目及其标签集合。
func (h *HTTPHandler) UpdateMedia(c *gin.Context) {
	id, ok := parseMediaID(c)
	if !ok {
		return
	}

	var payload entity.MediaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		BadRequest(c, "invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	changed, err := h.repo.UpdateMedia(ctx, id, &payload)
	if err != nil {
		respondStoreError(c, err, "failed to update media entry")
		return
	}
	if !changed {
		NotFound(c, "Media entry not found")
		return
	}

	c.JSON(http.StatusOK, entity.MutationResponse{Message: "Media entry updated successfully"})
}

// DeleteMedia 删除一条媒体条目，级联删除标签关联。
func (h *HTTPHandler) DeleteMedia(c *gin.Context) {
	id, ok := parseMediaID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	changed, err := h.repo.DeleteMedia(ctx, id)
	if err != nil {
		respondStoreError(c, err, "failed to delete media entry")
		return
	}
	if !changed {
		NotFound(c, "Media entry not found")
		return
	}

	c.JSON(http.StatusOK, entity.MutationResponse{Message: "Media entry deleted successfully"})
}

func parseMediaID(c *gin.Context) (uint, bool) {
	rawID := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid media id")
		return 0, false
	}
	return uint(id), true
}

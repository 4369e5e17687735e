package dto

import (
	"fmt"
	"strings"
	"time"

	"medialog/internal/entity/common"
	"medialog/internal/entity/db"
)

// MediaPayload 创建/更新媒体条目的请求体。
type MediaPayload struct {
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	MediaType     string         `json:"media_type"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	VolumeEpisode string         `json:"volume_episode"`
	Notes         string         `json:"notes"`
	Discontinued  bool           `json:"discontinued"`
	Tags          common.TagList `json:"tags"`
}

const dateLayout = "2006-01-02"

// Validate checks the payload against the storage-layer rules: required
// fields, the media type enumeration, and strict YYYY-MM-DD dates. Range
// ordering (end_date >= start_date) is only enforced when enforceDateRange
// is set; the bulk ingestion path passes false for parity with legacy
// imports.
func (p *MediaPayload) Validate(enforceDateRange bool) error {
	if strings.TrimSpace(p.Title) == "" {
		return common.NewMissingFieldError("title")
	}
	if strings.TrimSpace(p.MediaType) == "" {
		return common.NewMissingFieldError("media_type")
	}
	if !db.IsValidMediaType(p.MediaType) {
		return common.NewInvalidValueError("media_type",
			fmt.Sprintf("invalid media type %q, must be one of: %s", p.MediaType, strings.Join(db.MediaTypes, ", ")))
	}
	if strings.TrimSpace(p.StartDate) == "" {
		return common.NewMissingFieldError("start_date")
	}
	if _, err := time.Parse(dateLayout, p.StartDate); err != nil {
		return common.NewInvalidValueError("start_date", "invalid start_date format, use YYYY-MM-DD")
	}
	if p.EndDate != "" {
		if _, err := time.Parse(dateLayout, p.EndDate); err != nil {
			return common.NewInvalidValueError("end_date", "invalid end_date format, use YYYY-MM-DD")
		}
		if enforceDateRange && p.EndDate < p.StartDate {
			return common.NewInvalidValueError("end_date", "end_date must not be before start_date")
		}
	}
	return nil
}

// ToModel 将请求体转换为数据库实体（不含标签，标签由仓库层单独关联）。
func (p *MediaPayload) ToModel() db.Media {
	return db.Media{
		Title:         strings.TrimSpace(p.Title),
		Author:        strings.TrimSpace(p.Author),
		MediaType:     p.MediaType,
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		VolumeEpisode: strings.TrimSpace(p.VolumeEpisode),
		Notes:         p.Notes,
		Discontinued:  p.Discontinued,
	}
}

// MediaItem 是对外的扁平响应结构，标签以 ", " 连接为单个字符串（历史契约）。
type MediaItem struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	MediaType     string `json:"media_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	VolumeEpisode string `json:"volume_episode"`
	Notes         string `json:"notes"`
	Discontinued  bool   `json:"discontinued"`
	Tags          string `json:"tags"`
}

// MutationResponse 创建/更新/删除成功后的响应。
type MutationResponse struct {
	ID      uint   `json:"id,omitempty"`
	Message string `json:"message"`
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"medialog/internal/entity/converter"
	"medialog/internal/entity/dto"
	"medialog/internal/model"
	"medialog/internal/storage"
)

// ExportService 负责组装媒体日志快照并写入对象存储。
type ExportService struct {
	repo  model.Repository
	store storage.Storage
}

// NewExportService 创建导出服务实例
func NewExportService(repo model.Repository, store storage.Storage) *ExportService {
	return &ExportService{repo: repo, store: store}
}

type snapshot struct {
	ExportedAt time.Time       `json:"exported_at"`
	Media      []dto.MediaItem `json:"media"`
	Tags       []dto.Tag       `json:"tags"`
	MediaCount int             `json:"media_count"`
	TagCount   int             `json:"tag_count"`
}

// ExportSnapshot serializes every record and tag to JSON and saves the blob
// through the configured storage backend, returning the object key and the
// number of records captured.
func (s *ExportService) ExportSnapshot(ctx context.Context) (string, int, error) {
	if s == nil || s.repo == nil {
		return "", 0, fmt.Errorf("export service not initialised")
	}
	if s.store == nil {
		return "", 0, fmt.Errorf("storage not configured")
	}

	media, err := s.repo.ListMedia(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("list media: %w", err)
	}
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("list tags: %w", err)
	}

	snap := snapshot{
		ExportedAt: time.Now().UTC(),
		Media:      converter.MediaToItems(media),
		Tags:       converter.TagsToDTOs(tags),
		MediaCount: len(media),
		TagCount:   len(tags),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", 0, fmt.Errorf("marshal snapshot: %w", err)
	}

	key, err := s.store.SaveSnapshot(ctx, data)
	if err != nil {
		return "", 0, fmt.Errorf("save snapshot: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"key":         key,
		"media_count": len(media),
		"tag_count":   len(tags),
	}).Info("exported media log snapshot")

	return key, len(media), nil
}

package model

import (
	"context"

	"medialog/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 媒体条目
	CreateMedia(ctx context.Context, payload *entity.MediaPayload) (uint, error)
	UpdateMedia(ctx context.Context, id uint, payload *entity.MediaPayload) (bool, error)
	DeleteMedia(ctx context.Context, id uint) (bool, error)
	GetMediaByID(ctx context.Context, id uint) (*entity.DbMedia, error)
	QueryMediaByYear(ctx context.Context, year int) ([]entity.DbMedia, error)
	ListMedia(ctx context.Context) ([]entity.DbMedia, error)
	CountMedia(ctx context.Context) (int64, error)

	// 批量导入
	BulkCreateMedia(ctx context.Context, items []entity.MediaPayload) (*entity.BulkResult, error)

	// 标签
	ListMediaTags(ctx context.Context, mediaID uint) ([]string, error)
	ListTags(ctx context.Context) ([]entity.DbTag, error)

	Close() error
}

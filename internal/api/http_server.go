package api

import (
	"medialog/internal/config"
	"medialog/internal/model"
	"medialog/internal/service"
	"medialog/internal/storage"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg  config.Config
	repo model.Repository

	// 服务层
	exportService *service.ExportService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	return &HTTPHandler{
		cfg:           cfg,
		repo:          repo,
		exportService: service.NewExportService(repo, store),
	}, nil
}

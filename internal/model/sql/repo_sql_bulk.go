package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"medialog/internal/entity"
	"medialog/internal/entity/common"
)

// BulkCreateMedia inserts up to entity.BulkMaxItems records inside a single
// transaction, collecting per-item outcomes instead of aborting on the first
// failure. Items are validated before any insert attempt, so a failed item
// contributes no writes and the transaction only ever carries the successful
// subset. The transaction commits exactly once; a commit error discards the
// collected results and surfaces as the returned error.
//
// 批量路径不强制 end_date >= start_date，与历史导入行为保持一致。
func (r *GormRepository) BulkCreateMedia(ctx context.Context, items []entity.MediaPayload) (*entity.BulkResult, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if len(items) == 0 {
		return nil, common.NewInvalidValueError("items", "items must not be empty")
	}
	if len(items) > entity.BulkMaxItems {
		return nil, common.NewInvalidValueError("items",
			fmt.Sprintf("too many items: %d, maximum is %d", len(items), entity.BulkMaxItems))
	}

	result := &entity.BulkResult{
		Success: []entity.BulkItemSuccess{},
		Failed:  []entity.BulkItemFailure{},
		Total:   len(items),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			item := &items[i]
			title := strings.TrimSpace(item.Title)

			if err := item.Validate(false); err != nil {
				result.Failed = append(result.Failed, entity.BulkItemFailure{
					Index: i,
					Title: title,
					Error: err.Error(),
				})
				continue
			}

			media := item.ToModel()
			if err := tx.Create(&media).Error; err != nil {
				result.Failed = append(result.Failed, entity.BulkItemFailure{
					Index: i,
					Title: title,
					Error: err.Error(),
				})
				continue
			}
			if err := replaceMediaTags(tx, media.ID, item.Tags.ToSlice()); err != nil {
				result.Failed = append(result.Failed, entity.BulkItemFailure{
					Index: i,
					Title: title,
					Error: err.Error(),
				})
				continue
			}

			result.Success = append(result.Success, entity.BulkItemSuccess{
				Index: i,
				ID:    media.ID,
				Title: media.Title,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

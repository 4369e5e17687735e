package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medialog/internal/entity"
)

// CreateMedia validates the payload, inserts the record and attaches its
// normalized tags inside one transaction, returning the assigned id.
func (r *GormRepository) CreateMedia(ctx context.Context, payload *entity.MediaPayload) (uint, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	if payload == nil {
		return 0, fmt.Errorf("payload is nil")
	}
	if err := payload.Validate(r.strictDateRange); err != nil {
		return 0, err
	}

	var id uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		media := payload.ToModel()
		if err := tx.Create(&media).Error; err != nil {
			return err
		}
		if err := replaceMediaTags(tx, media.ID, payload.Tags.ToSlice()); err != nil {
			return err
		}
		id = media.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateMedia overwrites the record's fields and replaces its tag set. The
// boolean reports whether a row matched the id, so the caller can map a miss
// to 404 instead of treating it as a failure.
func (r *GormRepository) UpdateMedia(ctx context.Context, id uint, payload *entity.MediaPayload) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return false, fmt.Errorf("invalid media id")
	}
	if payload == nil {
		return false, fmt.Errorf("payload is nil")
	}
	if err := payload.Validate(r.strictDateRange); err != nil {
		return false, err
	}

	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.DbMedia
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		row := payload.ToModel()
		updates := map[string]interface{}{
			"title":          row.Title,
			"author":         row.Author,
			"media_type":     row.MediaType,
			"start_date":     row.StartDate,
			"end_date":       row.EndDate,
			"volume_episode": row.VolumeEpisode,
			"notes":          row.Notes,
			"discontinued":   row.Discontinued,
		}
		if err := tx.Model(&entity.DbMedia{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := replaceMediaTags(tx, id, payload.Tags.ToSlice()); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// DeleteMedia removes the record and its tag associations. A false result
// means no row matched the id.
func (r *GormRepository) DeleteMedia(ctx context.Context, id uint) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return false, fmt.Errorf("invalid media id")
	}

	changed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_id = ?", id).Delete(&entity.DbMediaTag{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.DbMedia{}, id)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

// GetMediaByID fetches a single record with its tags preloaded.
func (r *GormRepository) GetMediaByID(ctx context.Context, id uint) (*entity.DbMedia, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var media entity.DbMedia
	err := r.db.WithContext(ctx).
		Preload("Tags", orderTagsByName).
		First(&media, id).Error
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// QueryMediaByYear returns every record overlapping the given calendar year,
// ordered by start date. A record overlaps when it starts in the year, ends
// in the year, or spans it entirely; an open-ended record (no end date) is
// only visible in the year it started.
func (r *GormRepository) QueryMediaByYear(ctx context.Context, year int) ([]entity.DbMedia, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	// 日期以 YYYY-MM-DD 文本存储，年份比较用前四位子串，三种方言通用。
	y := fmt.Sprintf("%04d", year)

	var media []entity.DbMedia
	err := r.db.WithContext(ctx).
		Preload("Tags", orderTagsByName).
		Where(
			"substr(start_date, 1, 4) = ?"+
				" OR (end_date <> '' AND substr(end_date, 1, 4) = ?)"+
				" OR (end_date <> '' AND substr(start_date, 1, 4) < ? AND substr(end_date, 1, 4) > ?)",
			y, y, y, y,
		).
		Order("start_date ASC, id ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

// ListMedia returns every record with tags preloaded, ordered by start
// date. Used by the export snapshot.
func (r *GormRepository) ListMedia(ctx context.Context) ([]entity.DbMedia, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var media []entity.DbMedia
	err := r.db.WithContext(ctx).
		Preload("Tags", orderTagsByName).
		Order("start_date ASC, id ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

// CountMedia returns the total number of records.
func (r *GormRepository) CountMedia(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbMedia{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func orderTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name ASC")
}

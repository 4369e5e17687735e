package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medialog/internal/entity"
	"medialog/internal/entity/common"
)

// ListTags returns all tags sorted alphabetically.
func (r *GormRepository) ListTags(ctx context.Context) ([]entity.DbTag, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	var tags []entity.DbTag
	err := r.db.WithContext(ctx).
		Model(&entity.DbTag{}).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ListMediaTags returns the tag names associated with a record, sorted
// alphabetically.
func (r *GormRepository) ListMediaTags(ctx context.Context, mediaID uint) ([]string, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if mediaID == 0 {
		return nil, fmt.Errorf("invalid media id")
	}

	var names []string
	err := r.db.WithContext(ctx).
		Model(&entity.DbTag{}).
		Joins("JOIN media_tags ON media_tags.tag_id = tags.id").
		Where("media_tags.media_id = ?", mediaID).
		Order("tags.name ASC").
		Pluck("tags.name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// replaceMediaTags 全量替换一条媒体记录的标签关联：先删后插，不做差量。
// 名称在此归一化，因此重复输入自然塌缩；调用方负责事务。
func replaceMediaTags(tx *gorm.DB, mediaID uint, rawNames []string) error {
	if err := tx.Where("media_id = ?", mediaID).Delete(&entity.DbMediaTag{}).Error; err != nil {
		return err
	}

	for _, name := range common.NormalizeTagNames(rawNames) {
		tagID, err := getOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		link := entity.DbMediaTag{MediaID: mediaID, TagID: tagID}
		// 复合主键冲突视为已关联，结构化忽略而非匹配错误文本。
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// getOrCreateTag 按归一化名称查找标签，不存在则创建。并发创建同名标签时
// 插入被唯一索引拒绝并忽略，随后重查取回已有 ID。
func getOrCreateTag(tx *gorm.DB, name string) (uint, error) {
	var tag entity.DbTag
	err := tx.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return tag.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	tag = entity.DbTag{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
		return 0, err
	}
	if tag.ID != 0 {
		return tag.ID, nil
	}

	if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
		return 0, err
	}
	return tag.ID, nil
}

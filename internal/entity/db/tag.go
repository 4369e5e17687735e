package db

import "time"

// Tag 表示归一化后的标签，名称入库前已统一为小写去空白。
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

// TableName 指定表名
func (Tag) TableName() string {
	return "tags"
}

// MediaTag 媒体条目与标签的关联表。
type MediaTag struct {
	MediaID   uint      `gorm:"primaryKey;index" json:"media_id"`
	TagID     uint      `gorm:"primaryKey;index" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (MediaTag) TableName() string {
	return "media_tags"
}

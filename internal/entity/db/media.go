package db

import "time"

// Media 记录一条媒体消费条目（书籍、剧集、电影等）。
type Media struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title     string `gorm:"size:255;not null" json:"title"`
	Author    string `gorm:"size:255" json:"author"`
	MediaType string `gorm:"column:media_type;size:32;not null;index" json:"media_type"`

	// 日期以 YYYY-MM-DD 文本存储；EndDate 为空表示仍在进行中。
	StartDate string `gorm:"column:start_date;size:10;not null;index" json:"start_date"`
	EndDate   string `gorm:"column:end_date;size:10" json:"end_date"`

	VolumeEpisode string `gorm:"column:volume_episode;size:64" json:"volume_episode"`
	Notes         string `gorm:"type:text" json:"notes"`
	Discontinued  bool   `gorm:"default:false" json:"discontinued"`

	Tags []Tag `gorm:"many2many:media_tags;foreignKey:ID;joinForeignKey:MediaID;references:ID;joinReferences:TagID" json:"tags"`
}

// TableName 指定表名
func (Media) TableName() string {
	return "media"
}

// MediaTypes 是允许的媒体类型枚举。
var MediaTypes = []string{"book", "series", "comic", "movie", "anime", "cartoon"}

// IsValidMediaType 检查媒体类型是否在枚举内。
func IsValidMediaType(value string) bool {
	for _, t := range MediaTypes {
		if t == value {
			return true
		}
	}
	return false
}

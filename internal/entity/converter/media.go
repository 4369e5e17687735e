package converter

import (
	"sort"
	"strings"

	"medialog/internal/entity/db"
	"medialog/internal/entity/dto"
)

// TagToDTO converts db.Tag to dto.Tag.
func TagToDTO(t *db.Tag) dto.Tag {
	if t == nil {
		return dto.Tag{}
	}
	return dto.Tag{
		ID:   t.ID,
		Name: t.Name,
	}
}

// TagsToDTOs converts a slice of db.Tag to dto.Tag.
func TagsToDTOs(tags []db.Tag) []dto.Tag {
	dtos := make([]dto.Tag, len(tags))
	for i, t := range tags {
		dtos[i] = TagToDTO(&t)
	}
	return dtos
}

// JoinTagNames 将标签名按字母序以 ", " 连接（历史扁平字段契约）。
func JoinTagNames(tags []db.Tag) string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// MediaToItem 将 db.Media 转换为对外的扁平响应结构。
func MediaToItem(m *db.Media) dto.MediaItem {
	if m == nil {
		return dto.MediaItem{}
	}
	return dto.MediaItem{
		ID:            m.ID,
		Title:         m.Title,
		Author:        m.Author,
		MediaType:     m.MediaType,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		VolumeEpisode: m.VolumeEpisode,
		Notes:         m.Notes,
		Discontinued:  m.Discontinued,
		Tags:          JoinTagNames(m.Tags),
	}
}

// MediaToItems converts a slice of db.Media to dto.MediaItem.
func MediaToItems(media []db.Media) []dto.MediaItem {
	items := make([]dto.MediaItem, len(media))
	for i := range media {
		items[i] = MediaToItem(&media[i])
	}
	return items
}

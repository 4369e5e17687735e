package dto

// Tag is the DTO representation of a tag.
type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ExportResponse 导出快照接口的响应体。
type ExportResponse struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

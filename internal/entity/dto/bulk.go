package dto

// BulkMaxItems 单次批量导入允许的最大条目数。
const BulkMaxItems = 200

// BulkRequest 批量导入请求体。
type BulkRequest struct {
	Items []MediaPayload `json:"items"`
}

// BulkItemSuccess 批量导入中单条成功的记录。
type BulkItemSuccess struct {
	Index int    `json:"index"`
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// BulkItemFailure 批量导入中单条失败的记录。
type BulkItemFailure struct {
	Index int    `json:"index"`
	Title string `json:"title,omitempty"`
	Error string `json:"error"`
}

// BulkResult 批量导入的逐条结果汇总，不落库。
type BulkResult struct {
	Success []BulkItemSuccess `json:"success"`
	Failed  []BulkItemFailure `json:"failed"`
	Total   int               `json:"total"`
}

// AllSucceeded reports whether every submitted item was inserted.
func (r *BulkResult) AllSucceeded() bool {
	return len(r.Failed) == 0
}

// BulkResponse 批量导入接口的响应体。
type BulkResponse struct {
	Message string     `json:"message"`
	Results BulkResult `json:"results"`
}

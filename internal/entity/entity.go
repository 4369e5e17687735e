package entity

// Re-export the sub-package types under the names the rest of the code uses.

import (
	"medialog/internal/entity/common"
	"medialog/internal/entity/db"
	"medialog/internal/entity/dto"
)

// Database entities
type DbMedia = db.Media
type DbTag = db.Tag
type DbMediaTag = db.MediaTag

// Common types
type TagList = common.TagList
type ValidationError = common.ValidationError

// DTOs
type MediaPayload = dto.MediaPayload
type MediaItem = dto.MediaItem
type MutationResponse = dto.MutationResponse
type Tag = dto.Tag
type BulkRequest = dto.BulkRequest
type BulkItemSuccess = dto.BulkItemSuccess
type BulkItemFailure = dto.BulkItemFailure
type BulkResult = dto.BulkResult
type BulkResponse = dto.BulkResponse
type ExportResponse = dto.ExportResponse

// Constants
const BulkMaxItems = dto.BulkMaxItems

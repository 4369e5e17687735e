package sql

import (
	"fmt"

	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB

	// strictDateRange 控制单条创建/更新路径是否强制 end_date >= start_date。
	strictDateRange bool
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB, strictDateRange bool) *GormRepository {
	return &GormRepository{db: db, strictDateRange: strictDateRange}
}

// Close releases the underlying database handle. Called once on shutdown.
func (r *GormRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("obtain sql.DB: %w", err)
	}
	return sqlDB.Close()
}

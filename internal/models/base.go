package models

import (
	"time"

	"github.com/wasimadildev/begded-planner/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for database tables
type Base struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

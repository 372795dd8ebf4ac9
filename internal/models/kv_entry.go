package models

import "time"

// KVEntry is one row of the durable key-value table backing the goal store.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name shared with the SQL migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Option stores one named, admin-configurable value.
type Option struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Value     string         `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Option) TableName() string { return "options" }

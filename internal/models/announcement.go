package models

import (
	"time"

	"gorm.io/gorm"
)

type Announcement struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title       string         `json:"title" gorm:"not null"`
	Body        string         `json:"body"`
	Audience    string         `json:"audience" gorm:"default:all"`
	Published   bool           `json:"published" gorm:"default:false"`
	PublishedAt *time.Time     `json:"published_at"`
}

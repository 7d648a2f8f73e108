package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Username  string         `json:"username" gorm:"unique;not null"`
	Email     string         `json:"email"`
	Password  string         `json:"-" gorm:"not null"`
	FullName  string         `json:"full_name"`
	Role      string         `json:"role" gorm:"default:staff"`
	Active    bool           `json:"active" gorm:"default:true"`
}

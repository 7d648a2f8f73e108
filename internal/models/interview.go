package models

import (
	"time"

	"gorm.io/gorm"
)

// InterviewSlot holds an exit-interview time window. Booked is only ever
// advanced through the guarded booking update, never set directly.
type InterviewSlot struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `json:"deleted_at" gorm:"index"`
	StartsAt  time.Time          `json:"starts_at" gorm:"not null"`
	Capacity  int                `json:"capacity" gorm:"not null;default:1"`
	Booked    int                `json:"booked" gorm:"not null;default:0"`
	Bookings  []InterviewBooking `json:"bookings,omitempty" gorm:"foreignKey:SlotID"`
}

type InterviewBooking struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	SlotID    uint           `json:"slot_id" gorm:"not null;index"`
	FullName  string         `json:"full_name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ApplicantPending  = "pending"
	ApplicantAccepted = "accepted"
	ApplicantRejected = "rejected"
)

type Applicant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Number    string         `json:"number" gorm:"uniqueIndex;not null"`
	FullName  string         `json:"full_name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null"`
	Phone     string         `json:"phone"`
	Program   string         `json:"program" gorm:"not null"`
	Status    string         `json:"status" gorm:"default:pending"`
	Extra     datatypes.JSON `json:"extra"`
}

// AdmissionStat is scanned out of the group-by reporting query.
type AdmissionStat struct {
	Program string `json:"program"`
	Status  string `json:"status"`
	Total   int64  `json:"total"`
}

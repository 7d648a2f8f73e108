package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ExamStatusOpen  = "open"
	ExamStatusClose = "close"
)

type Exam struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description"`
	SectionsEnabled bool           `json:"sections_enabled" gorm:"default:false"`
	Status          string         `json:"status" gorm:"default:open"`
	Sections        []Section      `json:"sections,omitempty" gorm:"foreignKey:ExamID"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:ExamID"`
}

type Section struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	ExamID    uint           `json:"exam_id" gorm:"not null;index"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"not null"`
	Questions []Question     `json:"questions,omitempty" gorm:"foreignKey:SectionID"`
}

// Question hangs off an Exam directly or off a Section, never both on the
// canonical read path. Both columns exist; Owner() resolves which parent a
// row belongs to.
type Question struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	ExamID         *uint          `json:"exam_id,omitempty" gorm:"index"`
	SectionID      *uint          `json:"section_id,omitempty" gorm:"index"`
	Type           string         `json:"type" gorm:"not null"`
	Content        string         `json:"content"`
	ContentPreview string         `json:"content_preview"`
	Points         int            `json:"points" gorm:"not null;default:1"`
	Order          int            `json:"order" gorm:"not null"`
	Answers        []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

type Answer struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Type           string         `json:"type" gorm:"not null"`
	Content        string         `json:"content"`
	ContentPreview string         `json:"content_preview"`
	IsCorrect      bool           `json:"is_correct" gorm:"default:false"`
	Order          int            `json:"order" gorm:"not null"`
}

// QuestionOwner is the tagged view over the two nullable parent columns.
type QuestionOwner struct {
	Sectioned bool
	ExamID    uint
	SectionID uint
}

func (q *Question) Owner() QuestionOwner {
	if q.SectionID != nil {
		return QuestionOwner{Sectioned: true, SectionID: *q.SectionID}
	}
	var examID uint
	if q.ExamID != nil {
		examID = *q.ExamID
	}
	return QuestionOwner{ExamID: examID}
}

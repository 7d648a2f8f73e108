package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Submission is written once, inside the scoring transaction, and never
// touched again. Score and MaxScore are set at the end of that transaction.
type Submission struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `json:"deleted_at" gorm:"index"`
	Reference string             `json:"reference" gorm:"uniqueIndex;not null"`
	ExamID    uint               `json:"exam_id" gorm:"not null;index"`
	Details   datatypes.JSON     `json:"details"`
	Score     int                `json:"score"`
	MaxScore  int                `json:"max_score"`
	Answers   []SubmissionAnswer `json:"answers,omitempty" gorm:"foreignKey:SubmissionID"`
}

// SubmissionAnswer is the audit trail for one graded question. AnswerID is
// nil when the candidate left the question unanswered.
type SubmissionAnswer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CreatedAt     time.Time `json:"created_at"`
	SubmissionID  uint      `json:"submission_id" gorm:"not null;index"`
	QuestionID    uint      `json:"question_id" gorm:"not null"`
	AnswerID      *uint     `json:"answer_id"`
	IsCorrect     bool      `json:"is_correct"`
	PointsAwarded int       `json:"points_awarded"`
}

package models

// View DTOs returned by the exam read path. Content carries the resolved
// display value, Kind is "text" or "image".

type ExamView struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	SectionsEnabled bool           `json:"sections_enabled"`
	Status          string         `json:"status"`
	Sections        []SectionView  `json:"sections,omitempty"`
	Questions       []QuestionView `json:"questions,omitempty"`
}

type SectionView struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Order     int            `json:"order"`
	Questions []QuestionView `json:"questions"`
}

type QuestionView struct {
	ID      uint         `json:"id"`
	Type    string       `json:"type"`
	Content string       `json:"content"`
	Kind    string       `json:"kind"`
	Points  int          `json:"points"`
	Order   int          `json:"order"`
	Answers []AnswerView `json:"answers"`
}

type AnswerView struct {
	ID      uint   `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
	Order   int    `json:"order"`
	// Only populated for staff readers.
	IsCorrect *bool `json:"is_correct,omitempty"`
}

type SubmissionResult struct {
	SubmissionID uint             `json:"submission_id"`
	Reference    string           `json:"reference"`
	Score        int              `json:"score"`
	MaxScore     int              `json:"max_score"`
	Breakdown    []GradedQuestion `json:"breakdown"`
}

// GradedQuestion is one line of the scoring breakdown, mirrored into a
// SubmissionAnswer row.
type GradedQuestion struct {
	QuestionID    uint  `json:"question_id"`
	AnswerID      *uint `json:"answer_id"`
	IsCorrect     bool  `json:"is_correct"`
	PointsAwarded int   `json:"points_awarded"`
}

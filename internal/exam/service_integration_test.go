package exam

import (
	"fmt"
	"os"
	"testing"
	"time"

	"school-system/internal/models"
	"school-system/pkg/database"
)

// These tests hit a real postgres instance. Set SCHOOL_INTEGRATION=1 and the
// usual DB_* environment variables to run them.
func openTestDB(t *testing.T) *Repository {
	t.Helper()
	if os.Getenv("SCHOOL_INTEGRATION") != "1" {
		t.Skip("set SCHOOL_INTEGRATION=1 to run integration tests")
	}

	db, err := database.NewPostgresDB(&database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Exam{},
		&models.Section{},
		&models.Question{},
		&models.Answer{},
		&models.Submission{},
		&models.SubmissionAnswer{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return NewRepository(db)
}

func TestSubmit_DBIntegration(t *testing.T) {
	repo := openTestDB(t)
	svc := NewService(repo, nil, nil, "https://assets.school.example/storage")

	title := fmt.Sprintf("ITEST Exam %d", time.Now().UnixNano())
	points := 5
	created, err := svc.CreateExam(&ExamInput{
		Title: title,
		Questions: []QuestionInput{
			{Type: "text", Content: "2+2?", Points: &points, Answers: []AnswerInput{
				{Type: "text", Content: "4", IsCorrect: true},
				{Type: "text", Content: "5"},
			}},
		},
	})
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	defer svc.DeleteExam(created.ID)

	exam, err := svc.GetExam(created.ID)
	if err != nil {
		t.Fatalf("load exam: %v", err)
	}
	question := exam.Questions[0]
	var correctID uint
	for _, a := range question.Answers {
		if a.IsCorrect {
			correctID = a.ID
		}
	}

	result, err := svc.Submit(exam.ID, &SubmitInput{
		Details: map[string]interface{}{"name": "Integration Candidate"},
		Answers: map[string]uint{fmt.Sprint(question.ID): correctID},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Score != 5 || result.MaxScore != 5 {
		t.Errorf("score %d/%d, want 5/5", result.Score, result.MaxScore)
	}
	if result.Reference == "" {
		t.Error("expected a submission reference")
	}

	sub, err := svc.GetSubmission(result.SubmissionID)
	if err != nil {
		t.Fatalf("load submission: %v", err)
	}
	if sub.Score != 5 || sub.MaxScore != 5 {
		t.Errorf("persisted score %d/%d, want 5/5", sub.Score, sub.MaxScore)
	}
	if len(sub.Answers) != 1 {
		t.Fatalf("persisted answers = %d, want 1", len(sub.Answers))
	}
	if !sub.Answers[0].IsCorrect || sub.Answers[0].PointsAwarded != 5 {
		t.Errorf("persisted answer = %+v", sub.Answers[0])
	}
}

func TestSubmit_EmptyAnswers_DBIntegration(t *testing.T) {
	repo := openTestDB(t)
	svc := NewService(repo, nil, nil, "")

	points := 5
	created, err := svc.CreateExam(&ExamInput{
		Title: fmt.Sprintf("ITEST Unanswered %d", time.Now().UnixNano()),
		Questions: []QuestionInput{
			{Type: "text", Points: &points, Answers: []AnswerInput{
				{Type: "text", IsCorrect: true},
			}},
		},
	})
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	defer svc.DeleteExam(created.ID)

	result, err := svc.Submit(created.ID, &SubmitInput{Answers: map[string]uint{}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if result.Score != 0 || result.MaxScore != 5 {
		t.Errorf("score %d/%d, want 0/5", result.Score, result.MaxScore)
	}
	if len(result.Breakdown) != 1 {
		t.Fatalf("breakdown = %d entries, want 1", len(result.Breakdown))
	}
	if result.Breakdown[0].AnswerID != nil {
		t.Errorf("answer id = %v, want nil", result.Breakdown[0].AnswerID)
	}
}

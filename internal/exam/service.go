package exam

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-system/internal/models"
	"school-system/pkg/cache"
	"school-system/pkg/websocket"
)

var (
	ErrExamNotFound       = errors.New("exam not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmitFailed       = errors.New("failed to record submission")
)

type Service struct {
	repo        *Repository
	cache       *cache.RedisCache
	wsHub       *websocket.Hub
	storageBase string
}

func NewService(repo *Repository, cache *cache.RedisCache, wsHub *websocket.Hub, storageBase string) *Service {
	return &Service{
		repo:        repo,
		cache:       cache,
		wsHub:       wsHub,
		storageBase: storageBase,
	}
}

// CreateExam builds the aggregate from validated input and inserts it in one
// transaction. Caller-supplied ordering becomes the persisted order value,
// zero-based within each parent.
func (s *Service) CreateExam(in *ExamInput) (*models.Exam, error) {
	exam := &models.Exam{
		Title:           in.Title,
		Description:     in.Description,
		SectionsEnabled: in.SectionsEnabled,
		Status:          models.ExamStatusOpen,
	}

	for i, sec := range in.Sections {
		section := models.Section{Title: sec.Title, Order: i}
		section.Questions = buildQuestions(sec.Questions)
		exam.Sections = append(exam.Sections, section)
	}
	exam.Questions = buildQuestions(in.Questions)

	if err := s.repo.CreateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func buildQuestions(inputs []QuestionInput) []models.Question {
	var out []models.Question
	for i, q := range inputs {
		points := 1
		if q.Points != nil {
			points = *q.Points
		}
		question := models.Question{
			Type:           q.Type,
			Content:        storedContent(q.Content),
			ContentPreview: storedContent(q.ContentPreview),
			Points:         points,
			Order:          i,
		}
		for j, a := range q.Answers {
			question.Answers = append(question.Answers, models.Answer{
				Type:           a.Type,
				Content:        storedContent(a.Content),
				ContentPreview: storedContent(a.ContentPreview),
				IsCorrect:      a.IsCorrect,
				Order:          j,
			})
		}
		out = append(out, question)
	}
	return out
}

// GetExam serves the aggregate from cache when possible, reading through to
// the database and writing back on a miss.
func (s *Service) GetExam(id uint) (*models.Exam, error) {
	if s.cache != nil {
		if exam, err := s.cache.GetExam(id); err == nil {
			return exam, nil
		}
	}

	exam, err := s.repo.GetExam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetExam(exam); err != nil {
			log.Printf("Error caching exam %d: %v", id, err)
		}
	}
	return exam, nil
}

func (s *Service) ListExams() ([]models.Exam, error) {
	return s.repo.ListExams()
}

func (s *Service) UpdateExam(id uint, in *ExamUpdateInput) (*models.Exam, error) {
	exam, err := s.repo.GetExamRow(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		exam.Title = *in.Title
	}
	if in.Description != nil {
		exam.Description = *in.Description
	}
	if in.SectionsEnabled != nil {
		exam.SectionsEnabled = *in.SectionsEnabled
	}

	if err := s.repo.UpdateExam(exam); err != nil {
		return nil, err
	}
	s.invalidate(id)
	return exam, nil
}

// ToggleStatus flips open<->close, the only two states an exam has.
func (s *Service) ToggleStatus(id uint) (*models.Exam, error) {
	exam, err := s.repo.GetExamRow(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	if exam.Status == models.ExamStatusOpen {
		exam.Status = models.ExamStatusClose
	} else {
		exam.Status = models.ExamStatusOpen
	}

	if err := s.repo.UpdateExam(exam); err != nil {
		return nil, err
	}
	s.invalidate(id)

	if s.wsHub != nil {
		s.wsHub.Broadcast("exam_status_changed", map[string]interface{}{
			"exam_id": exam.ID,
			"status":  exam.Status,
		})
	}
	return exam, nil
}

func (s *Service) DeleteExam(id uint) error {
	if _, err := s.repo.GetExamRow(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	if err := s.repo.DeleteExam(id); err != nil {
		log.Printf("Error deleting exam %d: %v", id, err)
		return err
	}
	s.invalidate(id)
	return nil
}

// Submit grades the candidate's answers against the flattened question
// sequence and records the attempt atomically. Any storage failure rolls
// the whole attempt back and surfaces only a generic error.
func (s *Service) Submit(examID uint, in *SubmitInput) (*models.SubmissionResult, error) {
	exam, err := s.GetExam(examID)
	if err != nil {
		return nil, err
	}

	questions := FlattenQuestions(exam)
	score, maxScore, breakdown := gradeQuestions(questions, parseAnswerMap(in.Answers))

	details, err := json.Marshal(in.Details)
	if err != nil {
		log.Printf("Error encoding submission details for exam %d: %v", examID, err)
		return nil, ErrSubmitFailed
	}

	sub := &models.Submission{
		Reference: uuid.NewString(),
		ExamID:    exam.ID,
		Details:   details,
	}
	if err := s.repo.SaveSubmission(sub, breakdown, score, maxScore); err != nil {
		log.Printf("Error saving submission for exam %d: %v", examID, err)
		return nil, ErrSubmitFailed
	}

	return &models.SubmissionResult{
		SubmissionID: sub.ID,
		Reference:    sub.Reference,
		Score:        score,
		MaxScore:     maxScore,
		Breakdown:    breakdown,
	}, nil
}

func (s *Service) GetSubmission(id uint) (*models.Submission, error) {
	sub, err := s.repo.GetSubmission(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *Service) ListSubmissions(examID uint) ([]models.Submission, error) {
	if _, err := s.repo.GetExamRow(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return s.repo.ListSubmissions(examID)
}

// parseAnswerMap tolerates junk keys: anything that is not a numeric
// question id is dropped rather than rejected.
func parseAnswerMap(in map[string]uint) map[uint]uint {
	out := make(map[uint]uint, len(in))
	for k, v := range in {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		out[uint(id)] = v
	}
	return out
}

func (s *Service) invalidate(id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateExam(id); err != nil {
		log.Printf("Error invalidating exam cache %d: %v", id, err)
	}
}

package exam

import (
	"log"

	"gorm.io/gorm"

	"school-system/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func orderAsc(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}

// CreateExam inserts the exam and its whole section/question/answer tree in
// one transaction.
func (r *Repository) CreateExam(exam *models.Exam) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(exam).Error
	})
	if err != nil {
		log.Printf("Error creating exam: %v", err)
		return err
	}
	log.Printf("Created exam %d with %d sections and %d direct questions",
		exam.ID, len(exam.Sections), len(exam.Questions))
	return nil
}

// GetExam loads the full aggregate, every level in stored order. Direct
// questions are restricted to the unsectioned ones so the two ownership
// paths never bleed into each other.
func (r *Repository) GetExam(id uint) (*models.Exam, error) {
	var exam models.Exam
	err := r.db.
		Preload("Sections", orderAsc).
		Preload("Sections.Questions", orderAsc).
		Preload("Sections.Questions.Answers", orderAsc).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("section_id IS NULL").Order(`"order" ASC`)
		}).
		Preload("Questions.Answers", orderAsc).
		First(&exam, id).Error
	if err != nil {
		log.Printf("Error getting exam %d: %v", id, err)
		return nil, err
	}
	return &exam, nil
}

func (r *Repository) ListExams() ([]models.Exam, error) {
	var exams []models.Exam
	err := r.db.Order("created_at DESC").Find(&exams).Error
	if err != nil {
		log.Printf("Error listing exams: %v", err)
		return nil, err
	}
	return exams, nil
}

func (r *Repository) GetExamRow(id uint) (*models.Exam, error) {
	var exam models.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *Repository) UpdateExam(exam *models.Exam) error {
	err := r.db.Save(exam).Error
	if err != nil {
		log.Printf("Error updating exam %d: %v", exam.ID, err)
	}
	return err
}

// DeleteExam removes the exam and everything it owns in one transaction.
func (r *Repository) DeleteExam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&models.Section{}).Where("exam_id = ?", id).Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}

		questions := tx.Model(&models.Question{}).Where("exam_id = ?", id)
		if len(sectionIDs) > 0 {
			questions = tx.Model(&models.Question{}).Where("exam_id = ? OR section_id IN ?", id, sectionIDs)
		}
		var questionIDs []uint
		if err := questions.Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&models.Answer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", questionIDs).Delete(&models.Question{}).Error; err != nil {
				return err
			}
		}
		if len(sectionIDs) > 0 {
			if err := tx.Where("id IN ?", sectionIDs).Delete(&models.Section{}).Error; err != nil {
				return err
			}
		}

		var submissionIDs []uint
		if err := tx.Model(&models.Submission{}).Where("exam_id = ?", id).Pluck("id", &submissionIDs).Error; err != nil {
			return err
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&models.SubmissionAnswer{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", submissionIDs).Delete(&models.Submission{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Exam{}, id).Error
	})
}

// SaveSubmission persists a graded attempt: the submission row, one answer
// row per flattened question, and finally the two score fields. All of it
// commits or none of it does.
func (r *Repository) SaveSubmission(sub *models.Submission, graded []models.GradedQuestion, score, maxScore int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for _, g := range graded {
			row := models.SubmissionAnswer{
				SubmissionID:  sub.ID,
				QuestionID:    g.QuestionID,
				AnswerID:      g.AnswerID,
				IsCorrect:     g.IsCorrect,
				PointsAwarded: g.PointsAwarded,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return tx.Model(sub).Updates(map[string]interface{}{
			"score":     score,
			"max_score": maxScore,
		}).Error
	})
}

func (r *Repository) GetSubmission(id uint) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Preload("Answers").First(&sub, id).Error
	if err != nil {
		log.Printf("Error getting submission %d: %v", id, err)
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) ListSubmissions(examID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := r.db.Where("exam_id = ?", examID).Order("created_at DESC").Find(&subs).Error
	if err != nil {
		log.Printf("Error listing submissions for exam %d: %v", examID, err)
		return nil, err
	}
	return subs, nil
}

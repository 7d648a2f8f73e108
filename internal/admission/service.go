package admission

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-system/internal/models"
)

var ErrApplicantNotFound = errors.New("applicant not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

type ApplicantInput struct {
	FullName string                 `json:"full_name" validate:"required"`
	Email    string                 `json:"email" validate:"required,email"`
	Phone    string                 `json:"phone"`
	Program  string                 `json:"program" validate:"required"`
	Extra    map[string]interface{} `json:"extra"`
}

// CreateApplicant registers a new admission and hands back the generated
// applicant number the candidate keeps as their reference.
func (s *Service) CreateApplicant(in *ApplicantInput) (*models.Applicant, error) {
	extra, err := json.Marshal(in.Extra)
	if err != nil {
		log.Printf("Error encoding applicant extra fields: %v", err)
		return nil, err
	}

	applicant := &models.Applicant{
		Number:   uuid.NewString(),
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Program:  in.Program,
		Status:   models.ApplicantPending,
		Extra:    extra,
	}
	if err := s.repo.CreateApplicant(applicant); err != nil {
		return nil, err
	}
	return applicant, nil
}

func (s *Service) GetApplicant(id uint) (*models.Applicant, error) {
	applicant, err := s.repo.GetApplicant(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}
	return applicant, nil
}

func (s *Service) ListApplicants(status string) ([]models.Applicant, error) {
	return s.repo.ListApplicants(status)
}

func (s *Service) UpdateStatus(id uint, status string) error {
	err := s.repo.UpdateApplicantStatus(id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicantNotFound
	}
	return err
}

func (s *Service) DeleteApplicant(id uint) error {
	err := s.repo.DeleteApplicant(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicantNotFound
	}
	return err
}

func (s *Service) AdmissionStats() ([]models.AdmissionStat, error) {
	return s.repo.GetAdmissionStats()
}

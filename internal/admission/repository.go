package admission

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

func (r *Repository) CreateApplicant(applicant *models.Applicant) error {
	err := r.db.Create(applicant).Error
	if err != nil {
		log.Printf("Error creating applicant: %v", err)
	}
	return err
}

func (r *Repository) GetApplicant(id uint) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.First(&applicant, id).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *Repository) ListApplicants(status string) ([]models.Applicant, error) {
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var applicants []models.Applicant
	if err := query.Find(&applicants).Error; err != nil {
		log.Printf("Error listing applicants: %v", err)
		return nil, err
	}
	return applicants, nil
}

func (r *Repository) UpdateApplicantStatus(id uint, status string) error {
	result := r.db.Model(&models.Applicant{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		log.Printf("Error updating applicant %d status: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteApplicant(id uint) error {
	result := r.db.Delete(&models.Applicant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAdmissionStats is the reporting query: applicant counts grouped by
// program and status.
func (r *Repository) GetAdmissionStats() ([]models.AdmissionStat, error) {
	var stats []models.AdmissionStat

	err := r.db.Raw(`
        SELECT program, status, COUNT(*) as total
        FROM applicants
        WHERE deleted_at IS NULL
        GROUP BY program, status
        ORDER BY program, status
    `).Scan(&stats).Error

	if err != nil {
		log.Printf("Error getting admission stats: %v", err)
		return nil, err
	}
	return stats, nil
}

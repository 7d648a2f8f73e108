package announcement

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

func (r *Repository) Create(a *models.Announcement) error {
	err := r.db.Create(a).Error
	if err != nil {
		log.Printf("Error creating announcement: %v", err)
	}
	return err
}

func (r *Repository) Get(id uint) (*models.Announcement, error) {
	var a models.Announcement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) List() ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.Order("created_at DESC").Find(&items).Error
	if err != nil {
		log.Printf("Error listing announcements: %v", err)
		return nil, err
	}
	return items, nil
}

func (r *Repository) ListPublished() ([]models.Announcement, error) {
	var items []models.Announcement
	err := r.db.Where("published = ?", true).Order("published_at DESC").Find(&items).Error
	if err != nil {
		log.Printf("Error listing published announcements: %v", err)
		return nil, err
	}
	return items, nil
}

func (r *Repository) Update(a *models.Announcement) error {
	err := r.db.Save(a).Error
	if err != nil {
		log.Printf("Error updating announcement %d: %v", a.ID, err)
	}
	return err
}

func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

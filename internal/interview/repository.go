package interview

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"school-system/internal/models"
)

var ErrSlotFull = errors.New("interview slot is full")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSlot(slot *models.InterviewSlot) error {
	err := r.db.Create(slot).Error
	if err != nil {
		log.Printf("Error creating interview slot: %v", err)
	}
	return err
}

func (r *Repository) GetSlot(id uint) (*models.InterviewSlot, error) {
	var slot models.InterviewSlot
	if err := r.db.Preload("Bookings").First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *Repository) ListSlots() ([]models.InterviewSlot, error) {
	var slots []models.InterviewSlot
	err := r.db.Order("starts_at ASC").Find(&slots).Error
	if err != nil {
		log.Printf("Error listing interview slots: %v", err)
		return nil, err
	}
	return slots, nil
}

// Book seats a candidate in one transaction. The capacity check rides on the
// guarded update: zero rows affected means the slot filled up underneath us.
func (r *Repository) Book(slotID uint, booking *models.InterviewBooking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var slot models.InterviewSlot
		if err := tx.First(&slot, slotID).Error; err != nil {
			return err
		}

		result := tx.Model(&models.InterviewSlot{}).
			Where("id = ? AND booked < capacity", slotID).
			UpdateColumn("booked", gorm.Expr("booked + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSlotFull
		}

		booking.SlotID = slotID
		return tx.Create(booking).Error
	})
}

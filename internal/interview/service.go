package interview

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"school-system/internal/models"
)

var ErrSlotNotFound = errors.New("interview slot not found")

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

type SlotInput struct {
	StartsAt time.Time `json:"starts_at" validate:"required"`
	Capacity int       `json:"capacity" validate:"required,min=1"`
}

type BookingInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func (s *Service) CreateSlot(in *SlotInput) (*models.InterviewSlot, error) {
	slot := &models.InterviewSlot{
		StartsAt: in.StartsAt,
		Capacity: in.Capacity,
	}
	if err := s.repo.CreateSlot(slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) GetSlot(id uint) (*models.InterviewSlot, error) {
	slot, err := s.repo.GetSlot(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

func (s *Service) ListSlots() ([]models.InterviewSlot, error) {
	return s.repo.ListSlots()
}

func (s *Service) Book(slotID uint, in *BookingInput) (*models.InterviewBooking, error) {
	booking := &models.InterviewBooking{
		FullName: in.FullName,
		Email:    in.Email,
	}
	if err := s.repo.Book(slotID, booking); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		if errors.Is(err, ErrSlotFull) {
			return nil, ErrSlotFull
		}
		log.Printf("Error booking slot %d: %v", slotID, err)
		return nil, err
	}
	return booking, nil
}

package announcement

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"school-system/internal/models"
	"school-system/pkg/cache"
	"school-system/pkg/websocket"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type Service struct {
	repo  *Repository
	cache *cache.RedisCache
	wsHub *websocket.Hub
}

func NewService(repo *Repository, cache *cache.RedisCache, wsHub *websocket.Hub) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		wsHub: wsHub,
	}
}

type AnnouncementInput struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body"`
	Audience string `json:"audience" validate:"omitempty,oneof=all staff applicants"`
}

func (s *Service) Create(in *AnnouncementInput) (*models.Announcement, error) {
	a := &models.Announcement{
		Title:    in.Title,
		Body:     in.Body,
		Audience: in.Audience,
	}
	if a.Audience == "" {
		a.Audience = "all"
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(id uint) (*models.Announcement, error) {
	a, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) List() ([]models.Announcement, error) {
	return s.repo.List()
}

// PublicFeed is the published-only list, served via cache.
func (s *Service) PublicFeed() ([]models.Announcement, error) {
	if s.cache != nil {
		if items, err := s.cache.GetAnnouncementFeed(); err == nil {
			return items, nil
		}
	}

	items, err := s.repo.ListPublished()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAnnouncementFeed(items); err != nil {
			log.Printf("Error caching announcement feed: %v", err)
		}
	}
	return items, nil
}

func (s *Service) Update(id uint, in *AnnouncementInput) (*models.Announcement, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	a.Title = in.Title
	a.Body = in.Body
	if in.Audience != "" {
		a.Audience = in.Audience
	}
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	s.invalidateFeed()
	return a, nil
}

// Publish marks the announcement live, refreshes the cached feed, and pushes
// it to connected dashboards.
func (s *Service) Publish(id uint) (*models.Announcement, error) {
	a, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a.Published = true
	a.PublishedAt = &now
	if err := s.repo.Update(a); err != nil {
		return nil, err
	}
	s.invalidateFeed()

	if s.wsHub != nil {
		s.wsHub.Broadcast("announcement_published", a)
	}
	return a, nil
}

func (s *Service) Delete(id uint) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAnnouncementNotFound
	}
	if err == nil {
		s.invalidateFeed()
	}
	return err
}

func (s *Service) invalidateFeed() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAnnouncementFeed(); err != nil {
		log.Printf("Error invalidating announcement feed cache: %v", err)
	}
}

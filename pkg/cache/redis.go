package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"school-system/internal/models"
)

const (
	examTTL = 1 * time.Hour
	feedTTL = 10 * time.Minute
)

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: client,
		ctx:    context.Background(),
	}
}

func examKey(id uint) string {
	return fmt.Sprintf("exam:%d", id)
}

// SetExam caches the full aggregate; reads decorate it afterwards, so the
// cached form is the raw model tree.
func (c *RedisCache) SetExam(exam *models.Exam) error {
	data, err := json.Marshal(exam)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, examKey(exam.ID), data, examTTL).Err()
}

func (c *RedisCache) GetExam(id uint) (*models.Exam, error) {
	data, err := c.client.Get(c.ctx, examKey(id)).Bytes()
	if err != nil {
		return nil, err
	}

	var exam models.Exam
	err = json.Unmarshal(data, &exam)
	return &exam, err
}

func (c *RedisCache) InvalidateExam(id uint) error {
	return c.client.Del(c.ctx, examKey(id)).Err()
}

const announcementFeedKey = "announcements:published"

func (c *RedisCache) SetAnnouncementFeed(items []models.Announcement) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, announcementFeedKey, data, feedTTL).Err()
}

func (c *RedisCache) GetAnnouncementFeed() ([]models.Announcement, error) {
	data, err := c.client.Get(c.ctx, announcementFeedKey).Bytes()
	if err != nil {
		return nil, err
	}

	var items []models.Announcement
	err = json.Unmarshal(data, &items)
	return items, err
}

func (c *RedisCache) InvalidateAnnouncementFeed() error {
	return c.client.Del(c.ctx, announcementFeedKey).Err()
}

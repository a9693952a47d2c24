package service

import (
	"context"

	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/repository"
)

type topicService struct {
	topics repository.TopicRepository
}

// NewTopicService creates a new TopicService
func NewTopicService(topics repository.TopicRepository) TopicService {
	return &topicService{topics: topics}
}

func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/apperr"
	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/repository"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

// articleService orchestrates article reads and vote updates. Existence
// pre-checks always complete before the dependent query runs, so a rejection
// suppresses the query entirely.
type articleService struct {
	articles repository.ArticleRepository
	topics   repository.TopicRepository
	log      zerolog.Logger
}

// NewArticleService creates a new ArticleService
func NewArticleService(articles repository.ArticleRepository, topics repository.TopicRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articles: articles,
		topics:   topics,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// List returns the article listing for an already-normalized query. When a
// topic filter is present its existence is confirmed first: an unknown topic
// is NotFound, while a known topic with no articles is an empty listing.
func (s *articleService) List(ctx context.Context, q validation.ListQuery) ([]models.ArticleWithCommentCount, error) {
	if q.Topic != "" {
		exists, err := s.topics.Exists(ctx, q.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.NotFound(apperr.MsgTopicNotFound)
		}
	}
	return s.articles.List(ctx, q.SortBy, q.Order, q.Topic)
}

// Get returns one article with its comment count.
func (s *articleService) Get(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return article, nil
}

// IncrementVotes confirms the article exists, then applies the delta as a
// single atomic update. The update is never issued for a missing article.
func (s *articleService) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	exists, err := s.articles.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}

	article, err := s.articles.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if article == nil {
		// Row vanished between check and update.
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}

	s.log.Debug().Int64("article_id", id).Int("delta", delta).Int("votes", article.Votes).Msg("Votes updated")
	return article, nil
}

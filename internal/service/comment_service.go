package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/apperr"
	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/repository"
)

// commentService orchestrates comment reads and writes. Every foreign-key
// existence check completes before the dependent statement runs.
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	users    repository.UserRepository
	log      zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, users repository.UserRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		articles: articles,
		users:    users,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle returns an existing article's comments; an article without
// comments yields an empty listing, not an error.
func (s *commentService) ListForArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// Create inserts a comment after confirming both foreign keys: the article
// first, then the author. The insert never runs when either check fails.
func (s *commentService) Create(ctx context.Context, articleID int64, username, body string) (*models.Comment, error) {
	articleExists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, apperr.NotFound(apperr.MsgArticleNotFound)
	}

	userExists, err := s.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.NotFound(apperr.MsgUsernameNotFound)
	}

	comment, err := s.comments.Insert(ctx, articleID, username, body)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int64("article_id", articleID).Int64("comment_id", comment.CommentID).Msg("Comment created")
	return comment, nil
}

// Delete removes a comment after confirming it exists.
func (s *commentService) Delete(ctx context.Context, id int64) error {
	exists, err := s.comments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(apperr.MsgCommentNotFound)
	}
	return s.comments.Delete(ctx, id)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/repository"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

// TopicService lists topics.
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService lists users.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

// ArticleService reads articles and applies vote deltas.
type ArticleService interface {
	List(ctx context.Context, q validation.ListQuery) ([]models.ArticleWithCommentCount, error)
	Get(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
}

// CommentService reads, creates and deletes comments.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Create(ctx context.Context, articleID int64, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// Services holds all service interfaces.
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services with their repository dependencies.
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   NewTopicService(repos.Topic),
		User:    NewUserService(repos.User),
		Article: NewArticleService(repos.Article, repos.Topic, log),
		Comment: NewCommentService(repos.Comment, repos.Article, repos.User, log),
	}
}

package repository

import (
	"context"

	"github.com/imevanc/ncnews-backend/internal/database"
	"github.com/imevanc/ncnews-backend/internal/models"
)

// TopicRepository defines the interface for topic data operations.
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// ArticleRepository defines the interface for article data operations.
// List and GetByID return articles with their comment_count aggregate;
// sortBy and order must already be validated against the allow-list.
type ArticleRepository interface {
	List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleWithCommentCount, error)
	GetByID(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error)
	Insert(ctx context.Context, articleID int64, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// Repositories holds all repository interfaces.
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection.
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}

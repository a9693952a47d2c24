package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/imevanc/ncnews-backend/internal/database"
	"github.com/imevanc/ncnews-backend/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleWithCountColumns = `
	a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes,
	COUNT(c.comment_id) AS comment_count
`

// List returns articles with their comment counts, sorted and optionally
// filtered by topic. sortBy and order are interpolated into the statement
// and must come from the validation allow-list, never from raw input.
func (r *articleRepo) List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleWithCommentCount, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		%s
		GROUP BY a.article_id
		ORDER BY a.%s %s`,
		articleWithCountColumns, topicFilter(topic), sortBy, order,
	)

	var rows *sql.Rows
	var err error
	if topic != "" {
		rows, err = r.db.QueryContext(ctx, query, topic)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.ArticleWithCommentCount{}
	for rows.Next() {
		var article models.ArticleWithCommentCount
		err := rows.Scan(
			&article.ArticleID, &article.Title, &article.Topic, &article.Author,
			&article.Body, &article.CreatedAt, &article.Votes, &article.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func topicFilter(topic string) string {
	if topic == "" {
		return ""
	}
	return "WHERE a.topic = $1"
}

// GetByID retrieves one article with its comment count. A missing row
// returns (nil, nil); the caller decides what not-found means.
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id`,
		articleWithCountColumns,
	)

	var article models.ArticleWithCommentCount
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes, &article.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// IncrementVotes applies a signed delta to an article's vote counter in a
// single statement; votes may go negative. A missing row returns (nil, nil).
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Title, &article.Topic, &article.Author,
		&article.Body, &article.CreatedAt, &article.Votes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}

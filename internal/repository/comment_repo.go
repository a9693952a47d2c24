package repository

import (
	"context"

	"github.com/imevanc/ncnews-backend/internal/database"
	"github.com/imevanc/ncnews-backend/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle returns the comments on an article, newest first. An article
// with no comments yields an empty, non-nil slice.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, created_at, votes
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID, &comment.ArticleID, &comment.Author,
			&comment.Body, &comment.CreatedAt, &comment.Votes,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Insert creates a comment with votes defaulted to 0 and created_at set by
// the database, returning the created row.
func (r *commentRepo) Insert(ctx context.Context, articleID int64, username, body string) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, created_at, votes
	`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, articleID, username, body).Scan(
		&comment.CommentID, &comment.ArticleID, &comment.Author,
		&comment.Body, &comment.CreatedAt, &comment.Votes,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Delete removes a comment by id. Deleting a comment never touches the
// parent article's votes. Existence is the caller's precondition.
func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	return err
}

// Exists checks if a comment with the given ID exists
func (r *commentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)", id).Scan(&exists)
	return exists, err
}

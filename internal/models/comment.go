package models

import (
	"time"
)

// Comment is a reply attached to an article. Comments are created and
// deleted, never updated.
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Votes     int       `json:"votes" db:"votes"`
}

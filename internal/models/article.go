package models

import (
	"time"
)

// Article is a posted piece of content with a mutable vote counter. Votes is
// a signed counter with no floor; it is only ever changed through an atomic
// increment.
type Article struct {
	ArticleID int64     `json:"article_id" db:"article_id"`
	Title     string    `json:"title" db:"title"`
	Topic     string    `json:"topic" db:"topic"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Votes     int       `json:"votes" db:"votes"`
}

// ArticleWithCommentCount is an Article plus the number of comments attached
// to it, computed at read time. The count is serialized as a decimal string
// because clients of the original API receive the aggregate as text.
type ArticleWithCommentCount struct {
	Article
	CommentCount int64 `json:"comment_count,string" db:"comment_count"`
}

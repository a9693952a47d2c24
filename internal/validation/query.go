package validation

import (
	"strings"

	"github.com/imevanc/ncnews-backend/internal/apperr"
)

// sortColumns is the allow-list of article columns a listing may be sorted
// by. The listing query interpolates the normalized column name, so nothing
// outside this set may ever reach it.
var sortColumns = map[string]bool{
	"article_id": true,
	"title":      true,
	"topic":      true,
	"author":     true,
	"body":       true,
	"created_at": true,
	"votes":      true,
}

// ListQuery is a normalized article-listing query: a validated sort column,
// a validated direction, and an optional topic filter. Topic existence is
// checked later by the service; an empty Topic means no filter.
type ListQuery struct {
	SortBy string
	Order  string
	Topic  string
}

// NormalizeListQuery validates the raw sort_by, order and topic query values
// and fills in defaults (created_at descending, no filter). Direction is
// compared case-insensitively and normalized to lowercase. Invalid sort_by or
// order values fail with BadRequest before any database access.
func NormalizeListQuery(sortBy, order, topic string) (ListQuery, error) {
	q := ListQuery{SortBy: "created_at", Order: "desc", Topic: topic}

	if sortBy != "" {
		if !sortColumns[sortBy] {
			return ListQuery{}, apperr.BadRequest()
		}
		q.SortBy = sortBy
	}

	if order != "" {
		switch strings.ToLower(order) {
		case "asc", "desc":
			q.Order = strings.ToLower(order)
		default:
			return ListQuery{}, apperr.BadRequest()
		}
	}

	return q, nil
}

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/apperr"
	"github.com/imevanc/ncnews-backend/internal/mocks"
	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/service"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

func newArticleService(articles *mocks.MockArticleRepository, topics *mocks.MockTopicRepository) service.ArticleService {
	return service.NewArticleService(articles, topics, zerolog.Nop())
}

func seedArticle(articles *mocks.MockArticleRepository, id int64, votes int) {
	articles.Articles[id] = &models.ArticleWithCommentCount{
		Article: models.Article{
			ArticleID: id,
			Title:     "Living in the shadow of a great man",
			Topic:     "mitch",
			Author:    "butter_bridge",
			Body:      "I find this existence challenging",
			CreatedAt: time.Now(),
			Votes:     votes,
		},
		CommentCount: 11,
	}
}

func TestArticleList_UnknownTopicIsNotFound(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	topics := mocks.NewMockTopicRepository()
	svc := newArticleService(articles, topics)

	_, err := svc.List(context.Background(), validation.ListQuery{
		SortBy: "created_at", Order: "desc", Topic: "not-a-topic",
	})

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected *apperr.Error, got %v", err)
	}
	if appErr.Msg != apperr.MsgTopicNotFound {
		t.Errorf("Expected %q, got %q", apperr.MsgTopicNotFound, appErr.Msg)
	}
	if articles.LastListQuery != [3]string{} {
		t.Error("Expected listing query to be skipped for an unknown topic")
	}
}

func TestArticleList_KnownTopicWithNoArticlesIsEmpty(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	topics := mocks.NewMockTopicRepository()
	topics.Existing["paper"] = true
	svc := newArticleService(articles, topics)

	listing, err := svc.List(context.Background(), validation.ListQuery{
		SortBy: "created_at", Order: "desc", Topic: "paper",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if listing == nil || len(listing) != 0 {
		t.Errorf("Expected empty listing, got %v", listing)
	}
}

func TestArticleList_NoTopicSkipsExistenceCheck(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	topics := mocks.NewMockTopicRepository()
	topics.ExistsErr = errors.New("should not be called")
	svc := newArticleService(articles, topics)

	_, err := svc.List(context.Background(), validation.ListQuery{SortBy: "votes", Order: "asc"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if articles.LastListQuery != [3]string{"votes", "asc", ""} {
		t.Errorf("Unexpected listing query: %v", articles.LastListQuery)
	}
}

func TestArticleGet_NotFound(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	svc := newArticleService(articles, mocks.NewMockTopicRepository())

	_, err := svc.Get(context.Background(), 9999)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Msg != apperr.MsgArticleNotFound {
		t.Fatalf("Expected %q, got %v", apperr.MsgArticleNotFound, err)
	}
}

func TestArticleGet_Found(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	seedArticle(articles, 1, 100)
	svc := newArticleService(articles, mocks.NewMockTopicRepository())

	article, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if article.ArticleID != 1 || article.Votes != 100 || article.CommentCount != 11 {
		t.Errorf("Unexpected article: %+v", article)
	}
}

func TestIncrementVotes_Accumulates(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	seedArticle(articles, 1, 100)
	svc := newArticleService(articles, mocks.NewMockTopicRepository())

	if _, err := svc.IncrementVotes(context.Background(), 1, 5); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	article, err := svc.IncrementVotes(context.Background(), 1, -2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if article.Votes != 103 {
		t.Errorf("Expected votes 103, got %d", article.Votes)
	}
}

func TestIncrementVotes_CanGoNegative(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	seedArticle(articles, 1, 0)
	svc := newArticleService(articles, mocks.NewMockTopicRepository())

	article, err := svc.IncrementVotes(context.Background(), 1, -50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if article.Votes != -50 {
		t.Errorf("Expected votes -50, got %d", article.Votes)
	}
}

func TestIncrementVotes_MissingArticleSuppressesUpdate(t *testing.T) {
	articles := mocks.NewMockArticleRepository()
	svc := newArticleService(articles, mocks.NewMockTopicRepository())

	_, err := svc.IncrementVotes(context.Background(), 42, 5)

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Msg != apperr.MsgArticleNotFound {
		t.Fatalf("Expected %q, got %v", apperr.MsgArticleNotFound, err)
	}
	if articles.IncrementCalls != 0 {
		t.Errorf("Expected no update attempt, got %d", articles.IncrementCalls)
	}
}

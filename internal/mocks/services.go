package mocks

import (
	"context"

	"github.com/imevanc/ncnews-backend/internal/models"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

// MockTopicService is a mock implementation of service.TopicService
type MockTopicService struct {
	Topics []models.Topic
	Err    error
}

func (m *MockTopicService) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Topics == nil {
		return []models.Topic{}, nil
	}
	return m.Topics, nil
}

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	Users []models.User
	Err   error
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Users == nil {
		return []models.User{}, nil
	}
	return m.Users, nil
}

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	Articles      map[int64]*models.ArticleWithCommentCount
	Listing       []models.ArticleWithCommentCount
	ListErr       error
	GetErr        error
	IncrementErr  error
	LastListQuery validation.ListQuery
	LastDelta     int
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{Articles: make(map[int64]*models.ArticleWithCommentCount)}
}

func (m *MockArticleService) List(ctx context.Context, q validation.ListQuery) ([]models.ArticleWithCommentCount, error) {
	m.LastListQuery = q
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Listing == nil {
		return []models.ArticleWithCommentCount{}, nil
	}
	return m.Listing, nil
}

func (m *MockArticleService) Get(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Articles[id], nil
}

func (m *MockArticleService) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	m.LastDelta = delta
	if m.IncrementErr != nil {
		return nil, m.IncrementErr
	}
	article := m.Articles[id]
	if article == nil {
		return nil, nil
	}
	article.Votes += delta
	updated := article.Article
	return &updated, nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	ByArticle map[int64][]models.Comment
	Created   *models.Comment
	ListErr   error
	CreateErr error
	DeleteErr error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{ByArticle: make(map[int64][]models.Comment)}
}

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	comments, ok := m.ByArticle[articleID]
	if !ok {
		return []models.Comment{}, nil
	}
	return comments, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID int64, username, body string) (*models.Comment, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := &models.Comment{CommentID: 1, ArticleID: articleID, Author: username, Body: body}
	m.Created = created
	return created, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id int64) error {
	return m.DeleteErr
}

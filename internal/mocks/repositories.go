package mocks

import (
	"context"

	"github.com/imevanc/ncnews-backend/internal/models"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics    []models.Topic
	Existing  map[string]bool
	ListErr   error
	ExistsErr error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Existing: make(map[string]bool)}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Existing[slug], nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users     []models.User
	Existing  map[string]bool
	ListErr   error
	ExistsErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Existing: make(map[string]bool)}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Users, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.Existing[username], nil
}

// MockArticleRepository is a mock implementation of ArticleRepository.
// IncrementCalls counts mutation attempts so tests can assert a failed
// existence pre-check suppressed the write.
type MockArticleRepository struct {
	Articles       map[int64]*models.ArticleWithCommentCount
	Listing        []models.ArticleWithCommentCount
	ListErr        error
	IncrementErr   error
	IncrementCalls int
	LastListQuery  [3]string
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{Articles: make(map[int64]*models.ArticleWithCommentCount)}
}

func (m *MockArticleRepository) List(ctx context.Context, sortBy, order, topic string) ([]models.ArticleWithCommentCount, error) {
	m.LastListQuery = [3]string{sortBy, order, topic}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Listing == nil {
		return []models.ArticleWithCommentCount{}, nil
	}
	return m.Listing, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.ArticleWithCommentCount, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	m.IncrementCalls++
	if m.IncrementErr != nil {
		return nil, m.IncrementErr
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	article.Votes += delta
	updated := article.Article
	return &updated, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.Articles[id]
	return ok, nil
}

// MockCommentRepository is a mock implementation of CommentRepository.
// InsertCalls and DeleteCalls count mutation attempts for sequencing
// assertions.
type MockCommentRepository struct {
	Comments    map[int64]*models.Comment
	ByArticle   map[int64][]models.Comment
	NextID      int64
	InsertErr   error
	InsertCalls int
	DeleteCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments:  make(map[int64]*models.Comment),
		ByArticle: make(map[int64][]models.Comment),
		NextID:    1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	comments, ok := m.ByArticle[articleID]
	if !ok {
		return []models.Comment{}, nil
	}
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int64, username, body string) (*models.Comment, error) {
	m.InsertCalls++
	if m.InsertErr != nil {
		return nil, m.InsertErr
	}
	comment := &models.Comment{
		CommentID: m.NextID,
		ArticleID: articleID,
		Author:    username,
		Body:      body,
	}
	m.NextID++
	m.Comments[comment.CommentID] = comment
	m.ByArticle[articleID] = append(m.ByArticle[articleID], *comment)
	return comment, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := m.Comments[id]
	return ok, nil
}

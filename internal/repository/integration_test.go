//go:build integration

package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/imevanc/ncnews-backend/internal/database"
)

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *database.DB
	repos     *Repositories
	seed      string
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "000001_create_tables.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := database.Open(connStr, zerolog.Nop())
	s.Require().NoError(err)
	s.db = db
	s.repos = New(db)

	seed, err := os.ReadFile(filepath.Join("testdata", "seed.sql"))
	s.Require().NoError(err)
	s.seed = string(seed)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RepositoryIntegrationSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, "TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
	_, err = s.db.ExecContext(s.ctx, s.seed)
	s.Require().NoError(err)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) TestTopicList() {
	topics, err := s.repos.Topic.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(topics, 3)
	s.Equal("cats", topics[0].Slug)
	s.Equal("mitch", topics[1].Slug)
	s.Equal("paper", topics[2].Slug)
}

func (s *RepositoryIntegrationSuite) TestTopicExists() {
	exists, err := s.repos.Topic.Exists(s.ctx, "mitch")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repos.Topic.Exists(s.ctx, "not-a-topic")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryIntegrationSuite) TestUserList() {
	users, err := s.repos.User.List(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 4)
}

func (s *RepositoryIntegrationSuite) TestUserExists() {
	exists, err := s.repos.User.Exists(s.ctx, "butter_bridge")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repos.User.Exists(s.ctx, "Jacob")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryIntegrationSuite) TestArticleGetByID() {
	article, err := s.repos.Article.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(article)

	s.Equal(int64(1), article.ArticleID)
	s.Equal("Living in the shadow of a great man", article.Title)
	s.Equal("mitch", article.Topic)
	s.Equal("butter_bridge", article.Author)
	s.Equal("I find this existence challenging", article.Body)
	s.Equal(100, article.Votes)
	s.Equal(int64(11), article.CommentCount)
}

func (s *RepositoryIntegrationSuite) TestArticleGetByID_Missing() {
	article, err := s.repos.Article.GetByID(s.ctx, 9999)
	s.Require().NoError(err)
	s.Nil(article)
}

func (s *RepositoryIntegrationSuite) TestArticleList_DefaultOrder() {
	articles, err := s.repos.Article.List(s.ctx, "created_at", "desc", "")
	s.Require().NoError(err)
	s.Require().Len(articles, 12)

	for i := 1; i < len(articles); i++ {
		s.False(articles[i-1].CreatedAt.Before(articles[i].CreatedAt),
			"listing must be created_at descending at index %d", i)
	}
}

func (s *RepositoryIntegrationSuite) TestArticleList_SortByVotesAsc() {
	articles, err := s.repos.Article.List(s.ctx, "votes", "asc", "")
	s.Require().NoError(err)
	s.Require().Len(articles, 12)

	for i := 1; i < len(articles); i++ {
		s.LessOrEqual(articles[i-1].Votes, articles[i].Votes)
	}
	s.Equal(int64(1), articles[len(articles)-1].ArticleID)
}

func (s *RepositoryIntegrationSuite) TestArticleList_SortByTitleAsc() {
	articles, err := s.repos.Article.List(s.ctx, "title", "asc", "")
	s.Require().NoError(err)
	s.Require().Len(articles, 12)
	s.Equal("A", articles[0].Title)
	s.Equal("Z", articles[len(articles)-1].Title)
}

func (s *RepositoryIntegrationSuite) TestArticleList_TopicFilter() {
	articles, err := s.repos.Article.List(s.ctx, "created_at", "desc", "cats")
	s.Require().NoError(err)
	s.Require().Len(articles, 1)
	s.Equal("UNCOVERED: catspiracy to bring down democracy", articles[0].Title)
}

func (s *RepositoryIntegrationSuite) TestArticleList_TopicWithNoArticles() {
	articles, err := s.repos.Article.List(s.ctx, "created_at", "desc", "paper")
	s.Require().NoError(err)
	s.NotNil(articles)
	s.Len(articles, 0)
}

func (s *RepositoryIntegrationSuite) TestIncrementVotes_Accumulates() {
	article, err := s.repos.Article.IncrementVotes(s.ctx, 1, 5)
	s.Require().NoError(err)
	s.Equal(105, article.Votes)

	article, err = s.repos.Article.IncrementVotes(s.ctx, 1, -2)
	s.Require().NoError(err)
	s.Equal(103, article.Votes)
}

func (s *RepositoryIntegrationSuite) TestIncrementVotes_NoClamping() {
	article, err := s.repos.Article.IncrementVotes(s.ctx, 2, -50)
	s.Require().NoError(err)
	s.Equal(-50, article.Votes)
}

func (s *RepositoryIntegrationSuite) TestIncrementVotes_Missing() {
	article, err := s.repos.Article.IncrementVotes(s.ctx, 9999, 5)
	s.Require().NoError(err)
	s.Nil(article)
}

func (s *RepositoryIntegrationSuite) TestCommentListByArticle() {
	comments, err := s.repos.Comment.ListByArticle(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(comments, 11)

	for i := 1; i < len(comments); i++ {
		s.False(comments[i-1].CreatedAt.Before(comments[i].CreatedAt),
			"comments must be newest first at index %d", i)
	}
}

func (s *RepositoryIntegrationSuite) TestCommentListByArticle_NoneIsEmpty() {
	comments, err := s.repos.Comment.ListByArticle(s.ctx, 10)
	s.Require().NoError(err)
	s.NotNil(comments)
	s.Len(comments, 0)
}

func (s *RepositoryIntegrationSuite) TestCommentInsert() {
	comment, err := s.repos.Comment.Insert(s.ctx, 2, "lurker", "First!")
	s.Require().NoError(err)

	s.Equal(int64(2), comment.ArticleID)
	s.Equal("lurker", comment.Author)
	s.Equal("First!", comment.Body)
	s.Equal(0, comment.Votes)
	s.WithinDuration(time.Now(), comment.CreatedAt, time.Minute)

	article, err := s.repos.Article.GetByID(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(int64(1), article.CommentCount)
}

func (s *RepositoryIntegrationSuite) TestCommentDelete() {
	err := s.repos.Comment.Delete(s.ctx, 1)
	s.Require().NoError(err)

	exists, err := s.repos.Comment.Exists(s.ctx, 1)
	s.Require().NoError(err)
	s.False(exists)

	comments, err := s.repos.Comment.ListByArticle(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(comments, 10)
	for _, c := range comments {
		s.NotEqual(int64(1), c.CommentID)
	}

	// Deleting a comment never changes the parent article's votes.
	article, err := s.repos.Article.GetByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(100, article.Votes)
}

func (s *RepositoryIntegrationSuite) TestArticleExists() {
	exists, err := s.repos.Article.Exists(s.ctx, 1)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repos.Article.Exists(s.ctx, 9999)
	s.Require().NoError(err)
	s.False(exists)
}

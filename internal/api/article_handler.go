package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/apperr"
	"github.com/imevanc/ncnews-backend/internal/service"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// GetArticles handles GET /api/articles?sort_by=&order=&topic=
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	ctx := c.Request.Context()

	q, err := validation.NormalizeListQuery(
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("topic"),
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	articles, err := h.services.Article.List(ctx, q)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	article, err := h.services.Article.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticleByID handles PATCH /api/articles/:article_id with body
// {inc_votes: number}. The body is classified before any persistence call.
func (h *ArticleHandler) PatchArticleByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	payload, ok := bindBody(c)
	if !ok {
		return
	}

	fields, err := validation.VotePatch.Check(payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	// JSON numbers decode as float64; the vote delta must be integral.
	raw := fields["inc_votes"].(float64)
	delta := int(raw)
	if float64(delta) != raw {
		c.JSON(http.StatusBadRequest, gin.H{"msg": apperr.MsgBadRequest})
		return
	}

	article, err := h.services.Article.IncrementVotes(ctx, id, delta)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/service"
	"github.com/imevanc/ncnews-backend/internal/validation"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// GetCommentsByArticleID handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetCommentsByArticleID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	comments, err := h.services.Comment.ListForArticle(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostCommentByArticleID handles POST /api/articles/:article_id/comments
// with body {username: string, body: string}.
func (h *CommentHandler) PostCommentByArticleID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	payload, ok := bindBody(c)
	if !ok {
		return
	}

	fields, err := validation.CommentPost.Check(payload)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comment, err := h.services.Comment.Create(
		ctx, id,
		fields["username"].(string),
		fields["body"].(string),
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteCommentByID handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteCommentByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(ctx, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

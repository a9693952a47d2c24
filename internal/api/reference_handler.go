package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/service"
)

// ReferenceHandler handles the topic and user listing endpoints
type ReferenceHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewReferenceHandler creates a new ReferenceHandler
func NewReferenceHandler(services *service.Services, log zerolog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		services: services,
		log:      log.With().Str("handler", "reference").Logger(),
	}
}

// GetTopics handles GET /api/topics
func (h *ReferenceHandler) GetTopics(c *gin.Context) {
	topics, err := h.services.Topic.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// GetUsers handles GET /api/users
func (h *ReferenceHandler) GetUsers(c *gin.Context) {
	users, err := h.services.User.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

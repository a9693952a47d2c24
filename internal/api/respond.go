package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/imevanc/ncnews-backend/internal/apperr"
)

// respondError maps an error to its HTTP response. Domain errors carry their
// own status and message; PostgreSQL data/constraint rejections (SQLSTATE
// classes 22 and 23) read as malformed input; everything else is a generic
// 500 with no internal detail.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"msg": appErr.Msg})
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23":
			c.JSON(http.StatusBadRequest, gin.H{"msg": apperr.MsgBadRequest})
			return
		}
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unclassified failure")
	c.JSON(http.StatusInternalServerError, gin.H{"msg": apperr.MsgServerError})
}

// pathID parses a numeric path parameter. A non-numeric value responds 400
// and reports false; callers must return immediately.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": apperr.MsgBadRequest})
		return 0, false
	}
	return id, true
}

// bindBody decodes the request body into a JSON object. A missing body or
// anything that is not a JSON object responds 400 and reports false.
func bindBody(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": apperr.MsgBadRequest})
		return nil, false
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, true
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpoints documents the API surface, served from GET /api.
var endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves up a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": gin.H{
		"description": "serves an array of all topics",
		"exampleResponse": gin.H{
			"topics": []gin.H{{"slug": "football", "description": "Footie!"}},
		},
	},
	"GET /api/articles": gin.H{
		"description": "serves an array of all articles with their comment counts",
		"queries":     []string{"sort_by", "order", "topic"},
		"exampleResponse": gin.H{
			"articles": []gin.H{{
				"article_id":    1,
				"title":         "Seafood substitutions are increasing",
				"topic":         "cooking",
				"author":        "weegembump",
				"body":          "Text from the article..",
				"created_at":    "2018-05-30T15:59:13.341Z",
				"votes":         0,
				"comment_count": "6",
			}},
		},
	},
	"GET /api/articles/:article_id": gin.H{
		"description": "serves a single article with its comment count",
	},
	"PATCH /api/articles/:article_id": gin.H{
		"description":    "applies a vote delta to an article and serves the updated article",
		"exampleRequest": gin.H{"inc_votes": 5},
	},
	"GET /api/articles/:article_id/comments": gin.H{
		"description": "serves an array of comments for an article, newest first",
	},
	"POST /api/articles/:article_id/comments": gin.H{
		"description":    "creates a comment on an article and serves the created comment",
		"exampleRequest": gin.H{"username": "butter_bridge", "body": "Great read"},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes a comment by id, no response body",
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
		"exampleResponse": gin.H{
			"users": []gin.H{{"username": "butter_bridge"}},
		},
	},
}

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}

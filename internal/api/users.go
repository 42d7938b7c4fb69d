package api

import (
	"net/http"

	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/models"
	"agent_review_go_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func createSessionHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			UserID string `json:"userId"`
		}
		// Body is optional; an empty one binds the default demo user.
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&request); err != nil {
				errors.HandleError(c, errors.NewValidationError(err.Error()))
				return
			}
		}

		sessionID, err := ledger.CreateSession(request.UserID)
		if err != nil {
			errors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"session_id": sessionID})
	}
}

func currentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			errors.HandleError(c, errors.NewNotFoundError("user not found in context"))
			return
		}
		c.JSON(http.StatusOK, user.(models.User))
	}
}

func leaderboardHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"leaderboard": ledger.Leaderboard()})
	}
}

package api

import (
	"net/http"

	"agent_review_go_backend/internal/errors"
	"agent_review_go_backend/internal/models"
	"agent_review_go_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func submitReviewHandler(ledger *store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			// Also covers non-integer scores, which fail JSON binding.
			errors.HandleError(c, errors.NewValidationError(err.Error()))
			return
		}

		sessionID := c.GetString("session_id")
		review, err := ledger.SubmitReview(sessionID, input)
		if err != nil {
			errors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

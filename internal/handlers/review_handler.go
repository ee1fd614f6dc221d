package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func ListReviews(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := data.Reviews()
		c.JSON(http.StatusOK, models.ListResponse(reviews, len(reviews)))
	}
}

// DeleteReview removes a review and refreshes its event's rating.
func DeleteReview(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteReview(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "review")
	}
}

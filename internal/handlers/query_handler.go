package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func CreateQuery(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		var req struct {
			Subject string `json:"subject" binding:"required"`
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		q, err := data.AddQuery(c.Request.Context(), models.Query{
			UserID:  claims.UserID,
			Subject: req.Subject,
			Message: req.Message,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(q, "Query submitted"))
	}
}

func ListQueries(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		queries := data.Queries()
		c.JSON(http.StatusOK, models.ListResponse(queries, len(queries)))
	}
}

func UpdateQuery(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := data.UpdateQuery(c.Request.Context(), helpers.StringTrim(c.Param("id")), patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "query")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Query updated successfully"))
	}
}

func DeleteQuery(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteQuery(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "query")
	}
}

func AdminStats(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(data.Stats(), ""))
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func ListOffers(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		offers := data.Offers()
		c.JSON(http.StatusOK, models.ListResponse(offers, len(offers)))
	}
}

func CreateOffer(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offer models.EventCompanyOffer
		if err := c.ShouldBindJSON(&offer); err != nil {
			badRequest(c, err)
			return
		}
		created, err := catalog.CreateOffer(c.Request.Context(), offer)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Offer created successfully"))
	}
}

func UpdateOffer(catalog *services.CatalogService, data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := catalog.UpdateOffer(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "offer")
			return
		}
		offer, _ := data.Offer(id)
		c.JSON(http.StatusOK, models.SuccessResponse(offer, "Offer updated successfully"))
	}
}

func DeleteOffer(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteOffer(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "offer")
	}
}

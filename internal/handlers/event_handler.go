package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func ListEvents(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter store.EventFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			badRequest(c, err)
			return
		}
		switch filter.Sort {
		case "", store.SortFeatured, store.SortPriceLow, store.SortPriceHigh, store.SortRating:
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("unknown sort "+filter.Sort))
			return
		}
		events := data.SearchEvents(filter)
		c.JSON(http.StatusOK, models.ListResponse(events, len(events)))
	}
}

// ListCategories returns the suggested categories and the ones events use.
func ListCategories(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"suggested": models.EventCategories,
			"inUse":     data.Categories(),
		}, ""))
	}
}

func GetEvent(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := data.Event(helpers.StringTrim(c.Param("id")))
		if !ok {
			notFound(c, "event")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func ListEventOffers(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		offers := data.OffersForEvent(helpers.StringTrim(c.Param("id")))
		c.JSON(http.StatusOK, models.ListResponse(offers, len(offers)))
	}
}

func ListEventReviews(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := data.ReviewsForEvent(helpers.StringTrim(c.Param("id")))
		c.JSON(http.StatusOK, models.ListResponse(reviews, len(reviews)))
	}
}

func CreateEvent(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			badRequest(c, err)
			return
		}
		created, err := catalog.CreateEvent(c.Request.Context(), event)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event created successfully"))
	}
}

func UpdateEvent(catalog *services.CatalogService, data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := catalog.UpdateEvent(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "event")
			return
		}
		event, _ := data.Event(id)
		c.JSON(http.StatusOK, models.SuccessResponse(event, "Event updated successfully"))
	}
}

func DeleteEvent(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteEvent(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "event")
	}
}

func respondDeleted(c *gin.Context, found bool, err error, what string) {
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		notFound(c, what)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(nil, what+" deleted successfully"))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// ListTestimonials returns every testimonial, or only featured ones with
// ?featured=true.
func ListTestimonials(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var out []models.Testimonial
		if c.Query("featured") == "true" {
			out = data.FeaturedTestimonials()
		} else {
			out = data.Testimonials()
		}
		c.JSON(http.StatusOK, models.ListResponse(out, len(out)))
	}
}

func CreateTestimonial(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var t models.Testimonial
		if err := c.ShouldBindJSON(&t); err != nil {
			badRequest(c, err)
			return
		}
		created, err := catalog.CreateTestimonial(c.Request.Context(), t)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Testimonial created successfully"))
	}
}

func UpdateTestimonial(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := catalog.UpdateTestimonial(c.Request.Context(), helpers.StringTrim(c.Param("id")), patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "testimonial")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Testimonial updated successfully"))
	}
}

func DeleteTestimonial(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteTestimonial(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "testimonial")
	}
}

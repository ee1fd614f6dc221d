package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func ListCompanies(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		companies := data.Companies()
		c.JSON(http.StatusOK, models.ListResponse(companies, len(companies)))
	}
}

func GetCompany(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := data.Company(helpers.StringTrim(c.Param("id")))
		if !ok {
			notFound(c, "company")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(company, ""))
	}
}

func CreateCompany(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var company models.Company
		if err := c.ShouldBindJSON(&company); err != nil {
			badRequest(c, err)
			return
		}
		created, err := catalog.CreateCompany(c.Request.Context(), company)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Company created successfully"))
	}
}

func UpdateCompany(catalog *services.CatalogService, data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := catalog.UpdateCompany(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "company")
			return
		}
		company, _ := data.Company(id)
		c.JSON(http.StatusOK, models.SuccessResponse(company, "Company updated successfully"))
	}
}

// DeleteCompany also removes the company's offers.
func DeleteCompany(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteCompany(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "company")
	}
}

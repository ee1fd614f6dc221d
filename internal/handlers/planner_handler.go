package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
)

func RegisterCompany(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		var company models.Company
		if err := c.ShouldBindJSON(&company); err != nil {
			badRequest(c, err)
			return
		}
		created, err := planner.RegisterCompany(c.Request.Context(), claims.UserID, company)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Company registered"))
	}
}

func ListPlannerCompanies(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		companies := planner.Companies(claims.UserID)
		c.JSON(http.StatusOK, models.ListResponse(companies, len(companies)))
	}
}

func ListPlannerRequests(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		status := models.BookingStatus(c.Query("status"))
		switch status {
		case "", models.BookingPending, models.BookingConfirmed, models.BookingCancelled:
		default:
			c.JSON(http.StatusBadRequest, models.ErrorResponse("unknown status "+string(status)))
			return
		}
		requests := planner.Requests(claims.UserID, status)
		c.JSON(http.StatusOK, models.ListResponse(requests, len(requests)))
	}
}

func RespondToRequest(planner *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		booking, err := planner.RespondToRequest(c.Request.Context(), claims.UserID, helpers.StringTrim(c.Param("id")), req.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Request updated"))
	}
}

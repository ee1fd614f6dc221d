package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func CreateBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		var req services.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		booking, err := bookings.Book(c.Request.Context(), claims.UserID, claims.Role, req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking request sent"))
	}
}

func ListMyBookings(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		mine := bookings.MyBookings(claims.UserID)
		c.JSON(http.StatusOK, models.ListResponse(mine, len(mine)))
	}
}

func ClearMyBookings(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		n, err := bookings.ClearMyBookings(c.Request.Context(), claims.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"deleted": n}, "Bookings cleared"))
	}
}

func CreateReview(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		var req services.ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		review, err := bookings.Review(c.Request.Context(), claims.UserID, helpers.StringTrim(c.Param("id")), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(review, "Review submitted"))
	}
}

func ListBookings(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := data.Bookings()
		c.JSON(http.StatusOK, models.ListResponse(all, len(all)))
	}
}

type statusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// UpdateBookingStatus lets an admin move any booking between states.
func UpdateBookingStatus(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		found, err := data.UpdateBooking(c.Request.Context(), id, models.Patch{"status": req.Status})
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "booking")
			return
		}
		booking, _ := data.Booking(id)
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking updated"))
	}
}

func DeleteBooking(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := data.DeleteBooking(c.Request.Context(), helpers.StringTrim(c.Param("id")))
		respondDeleted(c, found, err, "booking")
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

func ListUsers(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := models.PublicUsers(data.Users())
		c.JSON(http.StatusOK, models.ListResponse(users, len(users)))
	}
}

func UpdateUser(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		var patch models.Patch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, err)
			return
		}
		found, err := data.UpdateUser(c.Request.Context(), id, patch)
		if err != nil {
			writeError(c, err)
			return
		}
		if !found {
			notFound(c, "user")
			return
		}
		user, _ := data.User(id)
		c.JSON(http.StatusOK, models.SuccessResponse(user.Public(), "User updated successfully"))
	}
}

// DeleteUser refuses to delete the caller's own account so an admin cannot
// lock themselves out.
func DeleteUser(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := helpers.StringTrim(c.Param("id"))
		if claims, ok := middleware.Claims(c); ok && claims.IsOwner(id) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("cannot delete your own account"))
			return
		}
		found, err := data.DeleteUser(c.Request.Context(), id)
		respondDeleted(c, found, err, "user")
	}
}

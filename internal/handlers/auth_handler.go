package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/services"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Secure bool
}

func Signup(auth *services.AuthService, tokens *helpers.TokenIssuer, cookies CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		user, err := auth.Signup(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		if !issueSession(c, tokens, cookies, user) {
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(user, "Account created"))
	}
}

func Login(auth *services.AuthService, tokens *helpers.TokenIssuer, cookies CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		user, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		if !issueSession(c, tokens, cookies, user) {
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, "Logged in"))
	}
}

func Logout(auth *services.AuthService, cookies CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Logout(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", cookies.Secure, true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

// Me returns the caller's account.
func Me(data *store.DataStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Claims(c)
		user, ok := data.User(claims.UserID)
		if !ok {
			notFound(c, "user")
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user.Public(), ""))
	}
}

// issueSession writes the token cookie and mirrors the token in a header for
// clients that cannot keep cookies.
func issueSession(c *gin.Context, tokens *helpers.TokenIssuer, cookies CookieConfig, user models.User) bool {
	token, exp, err := tokens.Issue(user)
	if err != nil {
		writeError(c, err)
		return false
	}
	c.SetCookie(
		middleware.AccessTokenCookie,
		token,
		int(time.Until(exp).Seconds()),
		"/",
		"", // let Gin pick current domain
		cookies.Secure,
		true,
	)
	c.Header("Authorization", "Bearer "+token)
	return true
}

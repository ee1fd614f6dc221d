package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/eventconnect/internal/helpers"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

// Context keys set by this package.
const (
	RequestIDKey = "request_id"
	UserKey      = "user"
)

// AccessTokenCookie holds the session token issued at login.
const AccessTokenCookie = "access_token"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get(RequestIDKey)

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if claims, ok := Claims(c); ok {
			attrs = append(attrs, "user_id", claims.UserID)
		}
		logger.Info("HTTP Request", attrs...)
	}
}

// ErrorHandler logs errors attached with c.Error and answers with a generic
// 500 when the handler wrote nothing.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID, _ := c.Get(RequestIDKey)

		logger.Error("Request error",
			"request_id", requestID,
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success":    false,
				"error":      "Internal server error",
				"request_id": requestID,
			})
		}
	}
}

// AuthMiddleware accepts the session token from the access_token cookie or
// an Authorization bearer header, then loads the user it names. Tokens for
// deleted users are rejected.
func AuthMiddleware(tokens *helpers.TokenIssuer, data *store.DataStore, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "session token not found")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			logger.Debug("Token rejected", "error", err)
			abortUnauthorized(c, "invalid or expired session")
			return
		}

		user, ok := data.User(claims.Subject)
		if !ok {
			logger.Info("Token for unknown user", "user_id", claims.Subject)
			abortUnauthorized(c, "account no longer exists")
			return
		}

		c.Set(UserKey, &helpers.SessionClaims{
			TokenClaims: claims,
			UserID:      user.ID,
			Email:       user.Email,
			Name:        user.Name,
			Role:        user.Role,
		})
		c.Next()
	}
}

// RequireRole lets the request through only for the given roles. It must
// run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			abortUnauthorized(c, "unauthorized")
			return
		}
		if !claims.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse("insufficient role"))
			return
		}
		c.Next()
	}
}

// Claims returns the identity AuthMiddleware stored on the context.
func Claims(c *gin.Context) (*helpers.SessionClaims, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*helpers.SessionClaims)
	return claims, ok
}

func bearerToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ApiResponse{
		Success: false,
		Message: "Unauthorized access",
		Error:   msg,
	})
}

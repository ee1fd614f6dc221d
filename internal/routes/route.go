package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventconnect/internal/container"
	"github.com/joshua-takyi/eventconnect/internal/handlers"
	"github.com/joshua-takyi/eventconnect/internal/middleware"
	"github.com/joshua-takyi/eventconnect/internal/models"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	origins := container.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	data := container.Data
	cookies := handlers.CookieConfig{Secure: container.SecureCookies}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "eventconnect-api",
			})
		})

		v1.POST("/signup", handlers.Signup(container.AuthService, container.Tokens, cookies))
		v1.POST("/login", handlers.Login(container.AuthService, container.Tokens, cookies))
		v1.POST("/logout", handlers.Logout(container.AuthService, cookies))

		v1.GET("/events", handlers.ListEvents(data))
		v1.GET("/events/categories", handlers.ListCategories(data))
		v1.GET("/events/:id", handlers.GetEvent(data))
		v1.GET("/events/:id/offers", handlers.ListEventOffers(data))
		v1.GET("/events/:id/reviews", handlers.ListEventReviews(data))
		v1.GET("/companies", handlers.ListCompanies(data))
		v1.GET("/companies/:id", handlers.GetCompany(data))
		v1.GET("/testimonials", handlers.ListTestimonials(data))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Tokens, data, container.Logger))
	{
		protected.GET("/me", handlers.Me(data))
		protected.GET("/bookings/mine", handlers.ListMyBookings(container.BookingService))
		protected.DELETE("/bookings/mine", handlers.ClearMyBookings(container.BookingService))
		protected.POST("/bookings", handlers.CreateBooking(container.BookingService))
		protected.POST("/bookings/:id/review", handlers.CreateReview(container.BookingService))
		protected.POST("/queries", handlers.CreateQuery(data))
	}

	plannerRoutes := protected.Group("/planner")
	plannerRoutes.Use(middleware.RequireRole(models.RolePlanner))
	{
		plannerRoutes.GET("/companies", handlers.ListPlannerCompanies(container.PlannerService))
		plannerRoutes.POST("/companies", handlers.RegisterCompany(container.PlannerService))
		plannerRoutes.GET("/requests", handlers.ListPlannerRequests(container.PlannerService))
		plannerRoutes.PATCH("/requests/:id", handlers.RespondToRequest(container.PlannerService))
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/stats", handlers.AdminStats(data))

		admin.POST("/events", handlers.CreateEvent(container.CatalogService))
		admin.PATCH("/events/:id", handlers.UpdateEvent(container.CatalogService, data))
		admin.DELETE("/events/:id", handlers.DeleteEvent(data))

		admin.POST("/companies", handlers.CreateCompany(container.CatalogService))
		admin.PATCH("/companies/:id", handlers.UpdateCompany(container.CatalogService, data))
		admin.DELETE("/companies/:id", handlers.DeleteCompany(data))

		admin.GET("/offers", handlers.ListOffers(data))
		admin.POST("/offers", handlers.CreateOffer(container.CatalogService))
		admin.PATCH("/offers/:id", handlers.UpdateOffer(container.CatalogService, data))
		admin.DELETE("/offers/:id", handlers.DeleteOffer(data))

		admin.POST("/testimonials", handlers.CreateTestimonial(container.CatalogService))
		admin.PATCH("/testimonials/:id", handlers.UpdateTestimonial(container.CatalogService))
		admin.DELETE("/testimonials/:id", handlers.DeleteTestimonial(data))

		admin.GET("/users", handlers.ListUsers(data))
		admin.PATCH("/users/:id", handlers.UpdateUser(data))
		admin.DELETE("/users/:id", handlers.DeleteUser(data))

		admin.GET("/bookings", handlers.ListBookings(data))
		admin.PATCH("/bookings/:id", handlers.UpdateBookingStatus(data))
		admin.DELETE("/bookings/:id", handlers.DeleteBooking(data))

		admin.GET("/reviews", handlers.ListReviews(data))
		admin.DELETE("/reviews/:id", handlers.DeleteReview(data))

		admin.GET("/queries", handlers.ListQueries(data))
		admin.PATCH("/queries/:id", handlers.UpdateQuery(data))
		admin.DELETE("/queries/:id", handlers.DeleteQuery(data))
	}

	return r
}

package routes

import (
	"net/http"
	"time"

	"flawless/config"
	"flawless/handlers"
	"flawless/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and password recovery.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/google", hb.Auth.GoogleSignInHandler)
		api.POST("/forgot-password", hb.Auth.ForgotPasswordHandler)
		api.POST("/reset-password/:token", hb.Auth.ResetPasswordHandler)
	}
	r.POST("/api/admin-login", hb.Auth.AdminLoginHandler)
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/slots", hb.Booking.GetBookedSlotsHandler)
		api.GET("/my-bookings", hb.Booking.GetMyBookingsHandler)
		api.PUT("/:id/reschedule", hb.Booking.RescheduleBookingHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.GET("", hb.Booking.GetAllBookingsHandler)
		admin.GET("/stats", hb.Booking.GetStatsHandler)
		admin.PUT("/:id/status", hb.Booking.UpdateStatusHandler)
		admin.DELETE("/:id", hb.Booking.DeleteBookingHandler)
		admin.DELETE("/actions/reset-all", hb.Booking.ResetAllBookingsHandler)
	}
}

// RegisterCatalogRoutes registers the public service menu and gallery.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.Catalog.ListServicesHandler)
	r.GET("/api/gallery", hb.Catalog.ListGalleryHandler)
}

// RegisterUserRoutes registers authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("/profile", hb.User.GetProfileHandler)
		api.POST("/profile-image", hb.User.UploadProfileImageHandler)
		api.DELETE("/profile-image", hb.User.DeleteProfileImageHandler)

		api.GET("/subscribers", middleware.AdminOnlyMiddleware(), hb.User.GetSubscribersHandler)
	}
}

// RegisterAdminRoutes sets up catalog management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
		api.GET("/services", hb.Catalog.ListAllServicesHandler)
		api.POST("/services", hb.Catalog.CreateServiceHandler)
		api.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		api.PUT("/services/:id/active", hb.Catalog.SetServiceActiveHandler)
		api.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)

		api.POST("/gallery", hb.Catalog.AddGalleryItemHandler)
		api.DELETE("/gallery/:id", hb.Catalog.DeleteGalleryItemHandler)

		api.POST("/upload", hb.Catalog.UploadImageHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.Chat.Chat)
}

// RegisterHealthRoute registers health-check endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Flawless"})
	}
	r.GET("/", health)
	r.GET("/health", health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	allowedOrigins := []string{"*"}
	if config.AppConfig.FrontendURL != "" {
		allowedOrigins = []string{config.AppConfig.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

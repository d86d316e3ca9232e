// File: flawless/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flawless/config"
	"flawless/cron"
	"flawless/database"
	bookingRepoPkg "flawless/database/repository/booking"
	galleryRepoPkg "flawless/database/repository/gallery"
	serviceRepoPkg "flawless/database/repository/service"
	userRepoPkg "flawless/database/repository/user"
	"flawless/handlers"
	"flawless/routes"
	"flawless/services/assistant"
	"flawless/services/booking"
	"flawless/services/catalog"
	"flawless/services/notification"
	"flawless/services/user"
	"flawless/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	cloudinaryStorageService, err := utils.Cloudinary(&config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	galleryRepo := galleryRepoPkg.NewMongoGalleryRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// notification pipeline: queue producer plus background deliverer.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	dispatcher := notification.NewQueueDispatcher(redisOpt)
	defer dispatcher.Close()

	mailer := notification.NewBrevoMailer(&config.AppConfig)
	whatsapp := notification.NewTwilioWhatsAppSender(&config.AppConfig)
	deliverer := notification.NewDeliverer(mailer, whatsapp)
	cron.InitNotificationWorker(deliverer)

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Services: serviceRepo,
		Notifier: dispatcher,
	}
	catalogService := &catalog.DefaultCatalogService{
		Services: serviceRepo,
		Gallery:  galleryRepo,
		Bookings: bookingRepo,
	}
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Mailer: mailer,
	}

	geminiClient, err := assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	chatCtxStore := assistant.NewRedisContextStore(utils.GetCacheClient(), 30*time.Minute)
	assistantService := assistant.NewAssistantService(geminiClient, chatCtxStore, serviceRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Booking: handlers.NewBookingHandler(bookingService),
		Catalog: handlers.NewCatalogHandler(catalogService, cloudinaryStorageService),
		User:    handlers.NewUserHandler(userService, cloudinaryStorageService),
		Chat:    handlers.NewChatHandler(assistantService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

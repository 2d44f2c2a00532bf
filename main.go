package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reserva-eva/config"
	"reserva-eva/handlers"
	"reserva-eva/models"
	"reserva-eva/services"
	"reserva-eva/store"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Starting Reserva EVA day-use booking system")

	// The site state lives in memory only; a restart starts from the defaults
	siteStore := store.New(cfg.DefaultDayLimit, models.DefaultAgeTiers())
	services.Init(cfg, siteStore)

	// Setup Gin router
	router := setupRouter()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter() *gin.Engine {
	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Catalog routes
		api.GET("/properties", handlers.GetProperties)
		api.GET("/tiers", handlers.GetTiers)

		// Calendar routes
		api.GET("/calendar", handlers.GetCalendar)
		api.GET("/days/:date", handlers.GetDay)
		api.GET("/days/:date/bookings/:id/share-link", handlers.GetShareLink)

		// Booking routes
		api.POST("/bookings", handlers.CreateBooking)
		api.GET("/bookings/lookup", handlers.LookupGuest)

		// Concierge chat
		api.POST("/ai/chat", handlers.ChatWithConcierge)

		// Admin routes
		api.POST("/admin/login", handlers.Login)

		admin := api.Group("/admin", handlers.AdminAuth())
		{
			admin.GET("/config", handlers.GetSiteConfig)
			admin.POST("/days/status", handlers.SetDayStatus)
			admin.POST("/days/limit", handlers.SetDayLimit)
			admin.PUT("/tiers/:id", handlers.UpdateTier)
			admin.POST("/bookings/:date/:id/payment", handlers.SetPayment)
			admin.GET("/export/:date/csv", handlers.ExportDayCSV)
			admin.GET("/export/:date/xlsx", handlers.ExportDayXLSX)
		}
	}

	// Serve static files (frontend)
	router.Static("/css", "./frontend/css")
	router.Static("/js", "./frontend/js")
	router.StaticFile("/", "./frontend/index.html")
	router.StaticFile("/index.html", "./frontend/index.html")

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

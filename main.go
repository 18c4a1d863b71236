package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/buidi2004/webbandocuoi/config"
	"github.com/buidi2004/webbandocuoi/database"
	"github.com/buidi2004/webbandocuoi/handlers"
	"github.com/buidi2004/webbandocuoi/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Connect to database
	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Initialize tables
	if err := db.InitializeTables(); err != nil {
		log.Fatal("Failed to initialize tables:", err)
	}

	// Initialize Cloudinary. Uploads are disabled if it is not configured.
	if config.AppConfig.CloudinaryURL != "" {
		if err := services.InitializeCloudinary(config.AppConfig.CloudinaryURL); err != nil {
			log.Printf("Warning: failed to initialize Cloudinary, uploads disabled: %v", err)
		}
	} else {
		log.Printf("CLOUDINARY_URL not set, image uploads disabled")
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(config.AppConfig.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "IVIE Studio server is running",
		})
	})

	// Initialize handlers
	handlers.InitializeHandlers(db)

	// API routes
	api := router.Group("/api/v1")
	{
		// Product routes
		products := api.Group("/products")
		{
			products.GET("", handlers.GetProducts)
			products.GET("/:id", handlers.GetProduct)
			products.POST("", handlers.CreateProduct)
			products.PUT("/:id", handlers.UpdateProduct)
			products.DELETE("/:id", handlers.DeleteProduct)
			products.GET("/:id/reviews", handlers.GetProductReviews)
			products.POST("/:id/reviews", handlers.CreateReview)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.GET("", handlers.GetOrders)
			orders.GET("/:id", handlers.GetOrder)
			orders.POST("", handlers.CreateOrder)
			orders.PUT("/:id/status", handlers.UpdateOrderStatus)
			orders.DELETE("/:id", handlers.DeleteOrder)
		}

		// Banner routes
		banners := api.Group("/banners")
		{
			banners.GET("", handlers.GetBanners)
			banners.POST("", handlers.CreateBanner)
			banners.PUT("/:id", handlers.UpdateBanner)
			banners.DELETE("/:id", handlers.DeleteBanner)
		}

		// Combo routes
		combos := api.Group("/combos")
		{
			combos.GET("", handlers.GetCombos)
			combos.POST("", handlers.CreateCombo)
			combos.PUT("/:id", handlers.UpdateCombo)
			combos.DELETE("/:id", handlers.DeleteCombo)
		}

		// Blog routes
		blog := api.Group("/blog")
		{
			blog.GET("", handlers.GetBlogPosts)
			blog.GET("/:id", handlers.GetBlogPost)
			blog.POST("", handlers.CreateBlogPost)
			blog.PUT("/:id", handlers.UpdateBlogPost)
			blog.DELETE("/:id", handlers.DeleteBlogPost)
		}

		// Contact routes
		contacts := api.Group("/contacts")
		{
			contacts.GET("", handlers.GetContacts)
			contacts.POST("", handlers.CreateContact)
			contacts.PUT("/:id/status", handlers.UpdateContactStatus)
			contacts.DELETE("/:id", handlers.DeleteContact)
		}

		// Gallery routes
		gallery := api.Group("/gallery")
		{
			gallery.GET("", handlers.GetGalleryImages)
			gallery.POST("", handlers.CreateGalleryImage)
			gallery.PUT("/:id", handlers.UpdateGalleryImage)
			gallery.DELETE("/:id", handlers.DeleteGalleryImage)
		}

		// Expert routes
		experts := api.Group("/experts")
		{
			experts.GET("", handlers.GetExperts)
			experts.GET("/:id", handlers.GetExpert)
			experts.POST("", handlers.CreateExpert)
			experts.PUT("/:id", handlers.UpdateExpert)
			experts.DELETE("/:id", handlers.DeleteExpert)
		}

		// Review moderation routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("", handlers.GetReviews)
			reviews.PUT("/:id/approve", handlers.ApproveReview)
			reviews.DELETE("/:id", handlers.DeleteReview)
		}

		// Image upload
		api.POST("/upload", handlers.UploadImage)

		// Analytics and dashboard routes
		stats := api.Group("/stats")
		{
			stats.GET("/overview", handlers.GetStatsOverview)
			stats.GET("/revenue", handlers.GetRevenueStats)
			stats.GET("/forecast", handlers.GetRevenueForecast)
			stats.GET("/segments", handlers.GetCustomerSegments)
			stats.GET("/recommendations", handlers.GetRecommendations)
			stats.GET("/recommendations/:id", handlers.GetProductRecommendations)
			stats.GET("/sentiment", handlers.GetSentimentStats)
			stats.GET("/status-breakdown", handlers.GetStatusBreakdown)
			stats.GET("/daily-revenue", handlers.GetDailyRevenue)
		}
	}

	log.Printf("Server starting on port %s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, corsHandler.Handler(router)))
}

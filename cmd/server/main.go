package main

import (
	"log"
	"time"

	"mangan/internal/config"
	"mangan/internal/database"
	"mangan/internal/handlers"
	"mangan/internal/migrations"
	"mangan/internal/models"
	"mangan/internal/redis"
	"mangan/internal/repository"
	"mangan/internal/services"
	"mangan/pkg/imagestore"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Seed default staff users and payment methods
	if err := migrations.SeedDefaults(db); err != nil {
		log.Fatal("Failed to seed default data:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize image store
	images, err := imagestore.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatal("Failed to init image store:", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	paymentRepo := repository.NewPaymentMethodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authService := services.NewAuthService(customerRepo, staffRepo, redisClient, cfg.JWTSecret, sessionTTL)
	customerService := services.NewCustomerService(customerRepo, images)
	staffService := services.NewStaffService(staffRepo)
	packageService := services.NewPackageService(packageRepo, images)
	paymentService := services.NewPaymentService(paymentRepo, images)
	orderService := services.NewOrderService(db, orderRepo, packageRepo, paymentService, images)
	deliveryService := services.NewDeliveryService(db, deliveryRepo, orderRepo, staffRepo, images)
	dashboardService := services.NewDashboardService(orderRepo, customerRepo, packageRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, customerService)
	packageHandler := handlers.NewPackageHandler(packageService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	orderHandler := handlers.NewOrderHandler(orderService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService, orderService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	staffHandler := handlers.NewStaffHandler(staffService, customerService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")

	// Public endpoints
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.CustomerLogin)
	api.POST("/auth/staff/login", authHandler.StaffLogin)
	api.GET("/packages", packageHandler.List)
	api.GET("/packages/:id", packageHandler.Get)
	api.GET("/payment-methods", paymentHandler.List)

	// Authenticated endpoints
	authed := api.Group("", handlers.AuthMiddleware(authService))
	authed.POST("/auth/logout", authHandler.Logout)

	customer := authed.Group("", handlers.RequireCustomer())
	{
		customer.GET("/me", authHandler.Profile)
		customer.PUT("/me", authHandler.UpdateProfile)
		customer.POST("/orders", orderHandler.Create)
		customer.GET("/orders/mine", orderHandler.ListMine)
		customer.POST("/orders/:id/payment-proof", orderHandler.UploadPaymentProof)
		customer.DELETE("/orders/:id", orderHandler.Cancel)
	}

	authed.GET("/orders/:id", orderHandler.Get)
	authed.GET("/orders/track/:code", orderHandler.Track)

	admin := authed.Group("/admin", handlers.RequireStaff(models.RoleAdmin))
	{
		admin.POST("/packages", packageHandler.Create)
		admin.PUT("/packages/:id", packageHandler.Update)
		admin.DELETE("/packages/:id", packageHandler.Delete)

		admin.POST("/payment-methods", paymentHandler.Create)
		admin.PUT("/payment-methods/:id", paymentHandler.Update)
		admin.DELETE("/payment-methods/:id", paymentHandler.Delete)
		admin.POST("/payment-methods/:id/details", paymentHandler.AddDetail)
		admin.PUT("/payment-methods/details/:detail_id", paymentHandler.UpdateDetail)
		admin.DELETE("/payment-methods/details/:detail_id", paymentHandler.DeleteDetail)

		admin.GET("/orders", orderHandler.ListAll)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		admin.GET("/orders/awaiting-courier", deliveryHandler.AwaitingOrders)
		admin.POST("/deliveries", deliveryHandler.Assign)
		admin.GET("/deliveries", deliveryHandler.ListAll)

		admin.GET("/staff", staffHandler.List)
		admin.GET("/staff/couriers", staffHandler.ListCouriers)
		admin.POST("/staff", staffHandler.Create)
		admin.PUT("/staff/:id", staffHandler.Update)
		admin.DELETE("/staff/:id", staffHandler.Delete)
		admin.GET("/customers", staffHandler.ListCustomers)
	}

	staffDash := authed.Group("/dashboard", handlers.RequireStaff(models.RoleAdmin, models.RoleOwner))
	{
		staffDash.GET("/stats", dashboardHandler.Stats)
		staffDash.GET("/top-packages", dashboardHandler.TopPackages)
		staffDash.GET("/monthly-revenue", dashboardHandler.MonthlyRevenue)
	}

	courier := authed.Group("/courier", handlers.RequireStaff(models.RoleCourier))
	{
		courier.GET("/deliveries", deliveryHandler.ListMine)
		courier.GET("/stats", deliveryHandler.MyStats)
		courier.POST("/deliveries/:id/delivered", deliveryHandler.MarkDelivered)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"os"

	"crane-parts-backend/internal/handler"
	"crane-parts-backend/internal/infrastructure"
	"crane-parts-backend/internal/middleware"
	"crane-parts-backend/internal/service"
	"crane-parts-backend/pkg/logger"
	"crane-parts-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crane-parts-backend",
		Short: "Crane parts storefront and administration backend",
	}
	rootCmd.AddCommand(
		serveCommand(),
		seedCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.New(logger.FromEnv())

			db := mustConnect(log)

			router := buildRouter(db, log)

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			log.Info("Starting crane parts backend", "port", port)
			if err := router.Run(":" + port); err != nil {
				log.Fatal("server exited", "error", err)
			}
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "load demo dealers, users, products, machines and orders",
		Run: func(cmd *cobra.Command, args []string) {
			log := logger.New(logger.FromEnv())

			db := mustConnect(log)

			userService := service.NewUserService(db)
			seedManager := infrastructure.NewSeedDataManager(db, userService)
			if err := seedManager.SeedAll(); err != nil {
				log.Fatal("failed to seed data", "error", err)
			}

			log.Info("Seed data loaded")
		},
	}
}

// mustConnect opens the shared database handle and runs migrations. The
// handle lives for the whole process; pooling is configured in
// infrastructure.ConnectDatabase.
func mustConnect(log *logger.Logger) *gorm.DB {
	db, err := infrastructure.ConnectDatabase(infrastructure.DefaultDatabaseConfig())
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	if err := infrastructure.MigrateAllSchemas(db); err != nil {
		log.Fatal("failed to migrate database schemas", "error", err)
	}

	return db
}

// buildRouter wires services, handlers and middleware into the gin engine.
func buildRouter(db *gorm.DB, log *logger.Logger) *gin.Engine {
	userService := service.NewUserService(db)
	authService := service.NewAuthenticationService(userService)
	orderService := service.NewOrderService(db)
	productService := service.NewProductService(db)
	partsService := service.NewPartsService(db)

	authzService, err := service.NewAuthorizationService()
	if err != nil {
		log.Fatal("failed to initialize authorization service", "error", err)
	}

	authHandler := handler.NewAuthHandler(authService, log)
	orderHandler := handler.NewOrderHandler(orderService, log)
	productHandler := handler.NewProductHandler(productService, log)
	partsHandler := handler.NewPartsHandler(partsService, log)

	serverMetrics := metrics.NewServerMetrics("api")

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(log.GinMiddleware())
	r.Use(gin.Recovery())
	r.Use(serverMetrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public routes
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/products", productHandler.GetProducts)
	r.GET("/api/products/:id", productHandler.GetProduct)

	// Protected routes. The orders surface reports errors with a success
	// flag, the machines/suggestions surface with a bare error field; the
	// middleware renders whichever envelope the group's clients expect.
	orders := r.Group("/api")
	orders.Use(middleware.AuthMiddleware(authService, middleware.EnvelopeSuccessFlag))

	orders.GET("/admin/orders",
		middleware.RequirePermission(authzService, "orders", "list_all", middleware.EnvelopeSuccessFlag),
		orderHandler.GetAdminOrders)
	orders.GET("/dealer/orders",
		middleware.RequirePermission(authzService, "orders", "list_own", middleware.EnvelopeSuccessFlag),
		orderHandler.GetDealerOrders)

	parts := r.Group("/api")
	parts.Use(middleware.AuthMiddleware(authService, middleware.EnvelopeBare))

	parts.GET("/machines/:id/compatible-parts", partsHandler.GetCompatibleParts)
	parts.GET("/suggestions", partsHandler.GetSuggestions)

	return r
}

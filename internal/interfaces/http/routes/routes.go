// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/infrastructure/database/redis"
	"github.com/your-org/stockmaster-backend/internal/interfaces/http/handlers"
	"github.com/your-org/stockmaster-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	setupAuthRoutes(rg, db, cfg)
	setupCatalogRoutes(rg, db, cfg)
	setupTopologyRoutes(rg, db, cfg)
	setupStockRoutes(rg, db, cfg)
	setupOperationRoutes(rg, db, cfg)
	setupDashboardRoutes(rg, db, cache, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}

// setupCatalogRoutes sets up product catalog routes
func setupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	products.Use(middleware.AuthMiddleware(cfg))
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// setupTopologyRoutes sets up warehouse and sub-location routes
func setupTopologyRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	warehouseHandler := handlers.NewWarehouseHandler(db, cfg)

	warehouses := rg.Group("/warehouses")
	warehouses.Use(middleware.AuthMiddleware(cfg))
	{
		warehouses.GET("", warehouseHandler.GetWarehouses)
		warehouses.GET("/:id", warehouseHandler.GetWarehouse)
		warehouses.POST("", warehouseHandler.CreateWarehouse)
	}

	locations := rg.Group("/locations")
	locations.Use(middleware.AuthMiddleware(cfg))
	{
		locations.GET("", warehouseHandler.GetSubLocations)
		locations.POST("", warehouseHandler.CreateSubLocation)
	}
}

// setupStockRoutes sets up stock level and movement routes
func setupStockRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	stockHandler := handlers.NewStockHandler(db, cfg)

	stocks := rg.Group("/stocks")
	stocks.Use(middleware.AuthMiddleware(cfg))
	{
		stocks.GET("", stockHandler.GetStocks)
		stocks.GET("/nearest", stockHandler.FindNearestStock)
	}

	moves := rg.Group("/moves")
	moves.Use(middleware.AuthMiddleware(cfg))
	{
		moves.GET("", stockHandler.GetMoveHistory)
	}
}

// setupOperationRoutes sets up operation document routes
func setupOperationRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	operationsHandler := handlers.NewOperationsHandler(db, cfg)

	receipts := rg.Group("/receipts")
	receipts.Use(middleware.AuthMiddleware(cfg))
	{
		receipts.GET("", operationsHandler.GetReceipts)
		receipts.GET("/:id", operationsHandler.GetReceipt)
		receipts.POST("", operationsHandler.CreateReceipt)
		receipts.PUT("/:id", operationsHandler.UpdateReceipt)
		receipts.DELETE("/:id", operationsHandler.DeleteReceipt)
		receipts.POST("/:id/validate", operationsHandler.ValidateReceipt)
	}

	deliveries := rg.Group("/deliveries")
	deliveries.Use(middleware.AuthMiddleware(cfg))
	{
		deliveries.GET("", operationsHandler.GetDeliveries)
		deliveries.GET("/:id", operationsHandler.GetDelivery)
		deliveries.POST("", operationsHandler.CreateDelivery)
		deliveries.PUT("/:id", operationsHandler.UpdateDelivery)
		deliveries.DELETE("/:id", operationsHandler.DeleteDelivery)
		deliveries.POST("/:id/validate", operationsHandler.ValidateDelivery)
	}

	transfers := rg.Group("/transfers")
	transfers.Use(middleware.AuthMiddleware(cfg))
	{
		transfers.GET("", operationsHandler.GetTransfers)
		transfers.GET("/:id", operationsHandler.GetTransfer)
		transfers.POST("", operationsHandler.CreateTransfer)
		transfers.PUT("/:id", operationsHandler.UpdateTransfer)
		transfers.DELETE("/:id", operationsHandler.DeleteTransfer)
		transfers.POST("/:id/validate", operationsHandler.ValidateTransfer)
	}

	adjustments := rg.Group("/adjustments")
	adjustments.Use(middleware.AuthMiddleware(cfg))
	{
		adjustments.GET("", operationsHandler.GetAdjustments)
		adjustments.GET("/:id", operationsHandler.GetAdjustment)
		adjustments.POST("", operationsHandler.CreateAdjustment)
	}
}

// setupDashboardRoutes sets up analytics routes
func setupDashboardRoutes(rg *gin.RouterGroup, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	dashboardHandler := handlers.NewDashboardHandler(db, cache, cfg)

	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(cfg))
	{
		dashboard.GET("", dashboardHandler.GetDashboard)
		dashboard.POST("/refresh", dashboardHandler.RefreshDashboard)
	}
}

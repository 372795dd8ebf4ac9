// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/wasimadildev/begded-planner/internal/docs" // Import swagger docs
	"github.com/wasimadildev/begded-planner/internal/handlers"
	"github.com/wasimadildev/begded-planner/internal/middleware"
	"github.com/wasimadildev/begded-planner/internal/services"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Auth      services.AuthServicer
	Sessions  services.SessionServicer
	Analytics services.AnalyticsServicer
	Audit     services.AuditServicer
	Tokens    *middleware.TokenManager
}

// NewRouter builds the gin engine with every API route.
func NewRouter(deps Dependencies) *gin.Engine {
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Sessions, deps.Audit, deps.Tokens)
	categoryHandler := handlers.NewCategoryHandler()
	transactionHandler := handlers.NewTransactionHandler(deps.Sessions, deps.Analytics, deps.Audit)
	goalHandler := handlers.NewGoalHandler(deps.Sessions, deps.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/categories", categoryHandler.GetCategories)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/analytics", transactionHandler.GetAnalytics)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.POST("/:id/contributions", goalHandler.Contribute)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	return router
}

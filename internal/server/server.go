// Package server wires repositories, services, handlers and middleware into
// a gin engine. Tests build the same engine over an in-memory database.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kamarlaylatt/my-expense/internal/handler"
	"github.com/kamarlaylatt/my-expense/internal/middleware"
	"github.com/kamarlaylatt/my-expense/internal/repository"
	"github.com/kamarlaylatt/my-expense/internal/service"
	"github.com/kamarlaylatt/my-expense/internal/token"
)

// Options configures the router.
type Options struct {
	JWTSecret string
	JWTExpiry time.Duration
}

// New builds the full API router on top of db.
func New(db *gorm.DB, opts Options) *gin.Engine {
	tokens := token.NewService(opts.JWTSecret, opts.JWTExpiry)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	currencyRepo := repository.NewCurrencyRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, tokens))
	categoryHandler := handler.NewCategoryHandler(service.NewCategoryService(categoryRepo))
	currencyHandler := handler.NewCurrencyHandler(service.NewCurrencyService(currencyRepo))
	expenseHandler := handler.NewExpenseHandler(service.NewExpenseService(expenseRepo, categoryRepo, currencyRepo))

	router := gin.New()
	router.Use(gin.Logger())
	// Uncaught panics become the opaque 500 envelope; nothing internal
	// reaches the client.
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to My Expense API"})
	})

	authGuard := middleware.AuthMiddleware(tokens, userRepo)

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
		auth.POST("/google", authHandler.GoogleCallback)
		auth.GET("/profile", authGuard, authHandler.Profile)
	}

	categories := router.Group("/api/categories", authGuard)
	{
		categories.POST("", categoryHandler.Create)
		categories.GET("", categoryHandler.List)
		categories.GET("/:id", categoryHandler.Get)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	currencies := router.Group("/api/currencies", authGuard)
	{
		currencies.POST("", currencyHandler.Create)
		currencies.GET("", currencyHandler.List)
		currencies.GET("/:id", currencyHandler.Get)
		currencies.PUT("/:id", currencyHandler.Update)
		currencies.DELETE("/:id", currencyHandler.Delete)
	}

	expenses := router.Group("/api/expenses", authGuard)
	{
		// Registered before /:id so "summary" is not taken as an ID.
		expenses.GET("/summary", expenseHandler.Summary)
		expenses.POST("", expenseHandler.Create)
		expenses.GET("", expenseHandler.List)
		expenses.GET("/:id", expenseHandler.Get)
		expenses.PUT("/:id", expenseHandler.Update)
		expenses.DELETE("/:id", expenseHandler.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.RespondWithError(c, http.StatusNotFound, "Route not found")
	})

	return router
}

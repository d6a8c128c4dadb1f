package bootstrap

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/storefronthq/storefront/backend/config"
	"github.com/storefronthq/storefront/backend/controllers"
	"github.com/storefronthq/storefront/backend/middleware"
	"github.com/storefronthq/storefront/backend/models"
	"github.com/storefronthq/storefront/backend/utils"
)

// based on https://www.digitalocean.com/community/tutorials/using-ldflags-to-set-version-information-for-go-applications
var Version = "dev"

func Bootstrap() *gin.Engine {
	initLogging()
	cfg := config.StorefrontConfig

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		EnableTracing:    true,
		TracesSampleRate: 0.1,
		Release:          "api@" + Version,
		DebugWriter:      utils.NewSentrySlogWriter(slog.Default().WithGroup("sentry")),
	}); err != nil {
		slog.Error("Sentry initialization failed", "error", err)
	}

	// database migrations
	models.ConnectDatabase()

	r := gin.Default()

	r.Use(sloggin.New(slog.Default().WithGroup("http")))
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"build_date":  cfg.GetString("build_date"),
			"deployed_at": cfg.GetString("deployed_at"),
			"version":     Version,
		})
	})

	r.POST("/auth/login", controllers.Login)
	r.POST("/users/", controllers.CreateUser)

	authorized := r.Group("/")
	authorized.Use(middleware.BearerTokenAuth())

	authorized.GET("/me/", controllers.GetCurrentUser)
	authorized.GET("/users/", controllers.ListUsers)
	authorized.GET("/users/:user_id", controllers.GetUser)

	authorized.GET("/categories/", controllers.ListCategories)
	authorized.POST("/categories/", controllers.CreateCategory)
	authorized.GET("/categories/:category_id", controllers.GetCategory)
	authorized.PUT("/categories/:category_id", controllers.UpdateCategory)
	authorized.DELETE("/categories/:category_id", controllers.DeleteCategory)

	authorized.GET("/products/", controllers.ListProducts)
	authorized.POST("/products/", controllers.CreateProduct)
	authorized.GET("/products/:product_id", controllers.GetProduct)
	authorized.PUT("/products/:product_id", controllers.UpdateProduct)
	authorized.DELETE("/products/:product_id", controllers.DeleteProduct)

	authorized.GET("/orders/", controllers.ListOrders)
	authorized.POST("/orders/", controllers.CreateOrder)
	authorized.GET("/orders/:order_id", controllers.GetOrder)
	authorized.PUT("/orders/:order_id", controllers.UpdateOrder)
	authorized.POST("/orders/:order_id/approve", controllers.ApproveOrder)
	authorized.POST("/orders/:order_id/cancel", controllers.CancelOrder)
	authorized.DELETE("/orders/:order_id", controllers.DeleteOrder)

	authorized.POST("/messages/", controllers.CreateMessage)
	authorized.GET("/messages/", controllers.ListMessages)
	authorized.GET("/messages/:message_id", controllers.GetMessage)
	authorized.PUT("/messages/:message_id", controllers.UpdateMessage)
	authorized.DELETE("/messages/:message_id", controllers.DeleteMessage)

	admin := r.Group("/")
	admin.Use(middleware.BearerTokenAuth(), middleware.RequireElevated())
	admin.POST("/tokens/issue-access-token", controllers.IssueAccessToken)

	return r
}

func initLogging() {
	logLevel := os.Getenv("STOREFRONT_LOG_LEVEL")
	var level slog.Leveler

	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

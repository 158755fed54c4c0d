package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mmtc/internal/server/http/handlers"
	"github.com/polkiloo/mmtc/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlacementFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(corsConfig()))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	// The decompress handle runs the remaining chain itself, so it must sit
	// behind the compressing writer.
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressOnly(), gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	employerHandler := handlers.NewEmployerHandler(facade)
	helperHandler := handlers.NewHelperHandler(facade)
	contractHandler := handlers.NewContractHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)
	requireAuth := middleware.AuthRequired(facade)

	engine.GET("/healthz", healthHandler.Check)

	employers := engine.Group("/employers")
	employers.GET("", requireAuth, employerHandler.List)
	employers.GET("/:id", employerHandler.Get)
	employers.POST("", employerHandler.Create)
	employers.PUT("/:id", employerHandler.Update)
	employers.DELETE("/:id", employerHandler.Delete)

	helpers := engine.Group("/helpers")
	helpers.GET("", helperHandler.List)
	helpers.GET("/:id", helperHandler.Get)
	helpers.POST("", helperHandler.Create)
	helpers.PUT("/:id", helperHandler.Update)
	helpers.DELETE("/:id", helperHandler.Delete)

	contracts := engine.Group("/contract")
	contracts.GET("", contractHandler.List)
	contracts.GET("/:id", contractHandler.Get)
	contracts.POST("", contractHandler.Create)
	contracts.DELETE("/:id", contractHandler.Delete)

	engine.POST("/users", authHandler.Signup)
	engine.POST("/login", authHandler.Login)
	engine.GET("/profile", requireAuth, authHandler.Profile)

	return engine
}

// corsConfig allows any origin to call the API with a bearer token.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("Authorization")
	return cfg
}

package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"CreditPathAI/internal/middleware"
)

// multipartOverhead is the slack allowed over MaxUploadBytes for form
// boundaries and part headers.
const multipartOverhead = 64 << 10

// NewRouter builds the engine with every route mounted.
// authPerMinute throttles signup and login per client IP; 0 disables it.
func NewRouter(h *Handler, authPerMinute int) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(h.Log, h.Metrics))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	config.ExposeHeaders = append(config.ExposeHeaders, "Content-Disposition", middleware.RequestIDHeader)
	router.Use(cors.New(config))

	router.MaxMultipartMemory = h.MaxUploadBytes

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/predict", h.Predict)
		api.POST("/predict_batch", h.PredictBatch)
	}

	requireUser := middleware.AuthMiddleware(h.Tokens, h.Store)

	authGroup := api.Group("/auth")
	{
		limited := authGroup.Group("", middleware.RateLimit(authPerMinute))
		limited.POST("/signup", h.Signup)
		limited.POST("/login", h.Login)
		authGroup.GET("/me", requireUser, h.Me)
	}

	batch := api.Group("/batch", requireUser)
	{
		batch.POST("/predict_batch_file", middleware.MaxBodySize(h.MaxUploadBytes+multipartOverhead), h.PredictBatchFile)
		batch.POST("/download_batch_results", h.DownloadBatchResults)
	}

	api.GET("/predictions", requireUser, h.ListPredictions)

	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

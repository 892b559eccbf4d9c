package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "CreditPathAI/docs"
	"CreditPathAI/internal/auth"
	"CreditPathAI/internal/config"
	"CreditPathAI/internal/handler"
	"CreditPathAI/internal/metrics"
	"CreditPathAI/internal/model"
	"CreditPathAI/internal/predictionlog"
	"CreditPathAI/internal/scoring"
	"CreditPathAI/internal/storage"
)

// @title                       CreditPathAI API
// @version                     1.0
// @description                 Loan default risk scoring with recommended collection actions.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zap.L().Sync()

	gin.SetMode(cfg.Server.Mode)

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		zap.L().Fatal("failed to open database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}
	defer store.Close()

	met := metrics.New()
	provider := model.NewProvider(cfg.Model.Path)
	if !provider.IsAvailable() {
		zap.L().Warn("model artifact not found, scoring returns 503 until the train command is run",
			zap.String("path", provider.Path()))
	}

	sink := predictionlog.Fanout{
		predictionlog.NewZapSink(zap.L()),
		predictionlog.NewStoreSink(store, zap.L()),
		predictionlog.NewMetricsSink(met),
	}

	h := handler.New(handler.Deps{
		Pipeline:       scoring.NewPipeline(provider, sink),
		Models:         provider,
		Store:          store,
		Tokens:         auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Metrics:        met,
		Log:            zap.L(),
		MaxUploadBytes: int64(cfg.Batch.MaxUploadMB) << 20,
	})
	router := handler.NewRouter(h, cfg.RateLimit.AuthPerMinute)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zap.L().Info("CreditPathAI API running", zap.String("addr", addr), zap.String("model", provider.Path()))
	if err := router.Run(addr); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}

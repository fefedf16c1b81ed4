package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-pulse/internal/bot"
	"btc-pulse/internal/cache"
	"btc-pulse/internal/config"
	"btc-pulse/internal/dashboard"
	"btc-pulse/internal/handler"
	"btc-pulse/internal/job"
	"btc-pulse/internal/provider"
	"btc-pulse/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newRefreshJobFunc      = job.NewRefreshJob
	startJobFunc           = func(j *job.RefreshJob, ctx context.Context) { go j.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Source adapters. CoinGecko serves both the market metrics and the
	// price series behind one rate limiter.
	blockProvider := provider.NewBlockchairProvider(tracer, cfg.BlockchairBaseURL)
	cgProvider := provider.NewCoinGeckoProvider(tracer, cfg.CoinGeckoBaseURL)
	fgProvider := provider.NewFearGreedProvider(tracer, cfg.FearGreedBaseURL)

	var redisClient dashboard.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}
	svc := dashboard.NewService(tracer, blockProvider, cgProvider, cgProvider, fgProvider, redisClient)

	// Refresh job: first cycle immediately, then every RefreshSecs.
	refreshJob := newRefreshJobFunc(tracer, svc, cfg.RefreshSecs)
	startJobFunc(refreshJob, ctx)

	startTelegramBotFunc(svc.State())

	h := handler.New(tracer, svc.State())

	r := newRouterFunc()
	r.Use(otelgin.Middleware("btc-pulse"))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

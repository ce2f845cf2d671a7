package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/cache"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/config"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/logger"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/observability"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/assistant"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/cropvision"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/marketscrape"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/ogdprices"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/gateways/weather"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/schemes"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/server"
	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/synthetic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting farmer support API", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	responseCache, err := cache.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, running without response cache", map[string]interface{}{
			"error": err.Error(),
		})
		responseCache = nil
	}
	if responseCache != nil {
		defer responseCache.Close()
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	weatherGateway := weather.NewGateway(&weather.Config{
		BaseURL:       cfg.APIs.Weather.BaseURL,
		ReverseGeoURL: cfg.APIs.Weather.ReverseGeoURL,
		GeoProviders:  cfg.APIs.Weather.GeoProviders,
		Timeout:       time.Duration(cfg.APIs.Weather.Timeout) * time.Millisecond,
		GeoTimeout:    time.Duration(cfg.APIs.Weather.GeoTimeout) * time.Millisecond,
		CacheTTL:      time.Duration(cfg.APIs.Weather.CacheTTL) * time.Second,
		DefaultCity:   cfg.Fallback.DefaultCity,
		DefaultLat:    cfg.Fallback.DefaultLatitude,
		DefaultLon:    cfg.Fallback.DefaultLongitude,
	}, responseCache, log)

	pricesGateway := ogdprices.NewGateway(&ogdprices.Config{
		BaseURL:    cfg.APIs.OGD.BaseURL,
		ResourceID: cfg.APIs.OGD.ResourceID,
		APIKey:     cfg.APIs.OGD.APIKey,
		Timeout:    time.Duration(cfg.APIs.OGD.Timeout) * time.Millisecond,
		CacheTTL:   time.Duration(cfg.APIs.OGD.CacheTTL) * time.Second,
		MaxRows:    cfg.Fallback.MaxPriceRows,
	}, responseCache, log)

	marketGateway := marketscrape.NewGateway(&marketscrape.Config{
		BaseURL:        cfg.APIs.Agmarknet.BaseURL,
		Timeout:        time.Duration(cfg.APIs.Agmarknet.Timeout) * time.Millisecond,
		DateWindowDays: cfg.APIs.Agmarknet.DateWindowDays,
		PacingDelay:    time.Duration(cfg.APIs.Agmarknet.PacingDelay) * time.Millisecond,
		MaxRows:        cfg.Fallback.MaxPriceRows,
	}, log)

	assistantGateway, err := assistant.NewGateway(ctx, &assistant.Config{
		APIKey:  cfg.APIs.Gemini.APIKey,
		Model:   cfg.APIs.Gemini.ChatModel,
		Timeout: time.Duration(cfg.APIs.Gemini.Timeout) * time.Millisecond,
	}, log)
	if err != nil {
		zapLogger.Fatal("failed to initialize assistant gateway", zap.Error(err))
	}

	visionGateway, err := cropvision.NewGateway(ctx, &cropvision.Config{
		APIKey:  cfg.APIs.Gemini.APIKey,
		Model:   cfg.APIs.Gemini.VisionModel,
		Timeout: time.Duration(cfg.APIs.Gemini.Timeout) * time.Millisecond,
	}, log)
	if err != nil {
		zapLogger.Fatal("failed to initialize crop vision gateway", zap.Error(err))
	}

	srv := server.New(&server.Dependencies{
		Weather:   weatherGateway,
		Prices:    pricesGateway,
		Market:    marketGateway,
		Assistant: assistantGateway,
		Vision:    visionGateway,
		Schemes:   schemes.NewService(),
		Generator: synthetic.New(),
		Config:    cfg,
		Logger:    log,
		Obs:       obs,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	case sig := <-stop:
		log.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

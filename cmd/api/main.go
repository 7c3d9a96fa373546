package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"petnames/internal/adapter/repo"
	"petnames/internal/http/handlers"
	httpapi "petnames/internal/http/httpapi"
	"petnames/internal/infra"
	"petnames/internal/infra/geoip"
	"petnames/internal/namegen"
	"petnames/internal/providers/weather"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	if cfg.AutoMigrate {
		if err := infra.Migrate(ctx, cfg.DatabaseURL, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	names := repo.NewGeneratedNameRepository(infra.NewSQLRunner(dbpool, logger))
	svc := namegen.NewService(namegen.Options{
		Source:   namegen.NewFakerSource(cfg.NameSourceSeed),
		Recorder: names,
		Logger:   &logger,
	})
	wx := weather.NewClient(weather.Options{
		BaseURL:        cfg.WeatherBaseURL,
		City:           cfg.WeatherCity,
		Latitude:       cfg.WeatherLatitude,
		Longitude:      cfg.WeatherLongitude,
		RequestTimeout: cfg.WeatherTimeout,
		Logger:         &logger,
	})

	app := handlers.NewApp(svc, names, wx, dbpool, &logger, cfg.RecentNamesLimit)

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	if resolver != nil {
		defer resolver.Close()
		app.Locator = resolver
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          &logger,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

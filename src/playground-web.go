package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bbernhard/winequality-playground/src/client"
	"github.com/bbernhard/winequality-playground/src/commons"
	"github.com/bbernhard/winequality-playground/src/viewstate"
	"github.com/bbernhard/winequality-playground/src/web"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := commons.DefaultConfig()

	configFile := flag.String("config", "", "Path to a TOML config file")
	releaseMode := flag.Bool("release", false, "Run in release mode")
	listen := flag.String("listen", cfg.Listen, "Address the web server listens on")
	backendURL := flag.String("backend-url", cfg.BackendURL, "Base URL of the prediction service")
	requestTimeout := flag.Duration("request-timeout", cfg.RequestTimeout.Duration, "Timeout for calls to the prediction service (0 = none)")
	redisAddress := flag.String("redis-address", cfg.RedisAddress, "Address to the Redis server (empty = keep pages in memory)")
	redisMaxConnections := flag.Int("redis-max-connections", cfg.RedisMaxConnections, "Max connections to Redis")
	sessionTTL := flag.Duration("session-ttl", cfg.SessionTTL.Duration, "How long a page state is kept")
	sentryDSN := flag.String("sentry-dsn", cfg.SentryDSN, "Sentry DSN for error reporting")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")

	flag.Parse()

	if *configFile != "" {
		if err := commons.LoadConfig(*configFile, &cfg); err != nil {
			log.Fatal("[Main] Couldn't load config: ", err.Error())
		}
	}

	//flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "release":
			cfg.Release = *releaseMode
		case "listen":
			cfg.Listen = *listen
		case "backend-url":
			cfg.BackendURL = *backendURL
		case "request-timeout":
			cfg.RequestTimeout.Duration = *requestTimeout
		case "redis-address":
			cfg.RedisAddress = *redisAddress
		case "redis-max-connections":
			cfg.RedisMaxConnections = *redisMaxConnections
		case "session-ttl":
			cfg.SessionTTL.Duration = *sessionTTL
		case "sentry-dsn":
			cfg.SentryDSN = *sentryDSN
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	commons.SetupLogging(cfg.LogLevel)

	if cfg.Release {
		log.Info("[Main] Starting gin in release mode!")
		gin.SetMode(gin.ReleaseMode)
	}

	reporter, err := commons.NewErrorReporter(cfg.SentryDSN)
	if err != nil {
		log.Error("[Main] Couldn't set up error reporting: ", err.Error())
	}

	var store viewstate.Store
	if cfg.RedisAddress != "" {
		redisPool := viewstate.NewRedisPool(cfg.RedisAddress, cfg.RedisMaxConnections)
		defer redisPool.Close()
		store = viewstate.NewRedisStore(redisPool, cfg.SessionTTL.Duration)
		log.Debug("[Main] Keeping pages in Redis at ", cfg.RedisAddress)
	} else {
		store = viewstate.NewMemoryStore(cfg.SessionTTL.Duration)
		log.Debug("[Main] Keeping pages in memory")
	}

	backend := client.New(cfg.BackendURL, cfg.RequestTimeout.Duration)
	server := web.NewServer(backend, store, reporter, cfg.SessionTTL.Duration)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("[Main] Listening on ", srv.Addr, ", prediction service at ", cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info("[Main] Shutdown signal received, shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("[Main] Graceful shutdown failed: ", err.Error())
			srv.Close()
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil {
		log.Fatal("[Main] Server error: ", err.Error())
	}
	log.Info("[Main] Shutdown complete")
}

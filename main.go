package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/configs"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/middlewares"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/pkg/logger"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/rabbitmq"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/routes"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/services"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Component: "tiffin-api"})
	gin.SetMode(cfg.GinMode)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := configs.SeedAdmin(configs.DB(), cfg); err != nil {
		log.Error("seed admin failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Events are optional; the API works without a broker.
	var events services.EventPublisher = services.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
		if err == nil {
			if err = pub.Setup(); err != nil {
				pub.Close()
			}
		}
		if err != nil {
			log.Warn("rabbitmq unavailable, order events disabled", "error", err)
		} else {
			defer pub.Close()
			events = pub
		}
	}

	hub := ws.NewTrackingHub(log)
	go hub.Run(ctx)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(log.GinMiddleware())
	r.Use(middlewares.PrometheusMiddleware())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	if err := routes.RegisterRoutes(r, configs.DB(), cfg, routes.Deps{Events: events, Hub: hub, Log: log}); err != nil {
		log.Error("register routes failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

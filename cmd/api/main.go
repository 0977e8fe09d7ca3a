package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"adminacl/internal/config"
	"adminacl/internal/directory"
	"adminacl/internal/handler"
	"adminacl/internal/logger"
	"adminacl/internal/metrics"
	"adminacl/internal/middleware"
	"adminacl/internal/repository"
	"adminacl/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	aclMetrics := metrics.New(registry)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Set up dependencies (Repository -> Service -> Handler)
	roleRepo := repository.NewRoleRepository()
	auditRepo := repository.NewAuditRepository()
	roleService := service.NewRoleService(roleRepo, auditRepo, zlog, aclMetrics)
	userService := service.NewUserService(directory.NewStatic(), roleService, zlog)
	auditService := service.NewAuditService(auditRepo)

	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	auditHandler := handler.NewAuditHandler(auditService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zlog))
	router.Use(middleware.Collect(httpMetrics))

	// CORS configuration for the dashboard SPA
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Request-ID"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	roleHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))

	zlog.Info("server listening", zap.String("addr", cfg.ServerAddr), zap.String("env", cfg.Env))
	if err := router.Run(cfg.ServerAddr); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quillbox/quillbox-server/handlers"
	"github.com/quillbox/quillbox-server/internal/admins"
	"github.com/quillbox/quillbox-server/internal/config"
	"github.com/quillbox/quillbox-server/internal/database"
	notehandler "github.com/quillbox/quillbox-server/internal/note/handler"
	noterepo "github.com/quillbox/quillbox-server/internal/note/repository"
	noteservice "github.com/quillbox/quillbox-server/internal/note/service"
	"github.com/quillbox/quillbox-server/internal/tokens"
	"github.com/quillbox/quillbox-server/pkg/logger"
	"github.com/quillbox/quillbox-server/pkg/metrics"
	"github.com/quillbox/quillbox-server/pkg/middleware"
)

func main() {
	// logging level can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for the browser client: set common headers
	// and respond to OPTIONS preflights.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
	})

	ctx := context.Background()

	// Retry/backoff when connecting to MongoDB to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if err != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Infof("Connected to MongoDB")

	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatalf("failed to create indexes: %v", err)
	}

	adminSvc := admins.NewService(admins.NewMongoRepository(db.Collection("admins")))
	created, err := adminSvc.EnsureDefault(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		logger.Errorf("error initializing admin: %v", err)
	} else if created {
		logger.Infof("Admin user %q created successfully", cfg.Admin.Username)
	}

	noteSvc := noteservice.New(noterepo.NewMongoRepo(db.Collection("notes")))

	requireAuth := middleware.AuthMiddleware(tokens.NewVerifier(cfg))

	handlers.NewAdminHandler(cfg, adminSvc).Register(r.Group("/api/admin"), requireAuth)
	notehandler.New(noteSvc).Register(r.Group("/api/notes", requireAuth))

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterSwagger(r)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting note service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

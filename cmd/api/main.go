package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"newsapi/internal/auth"
	"newsapi/internal/config"
	"newsapi/internal/database"
	"newsapi/internal/database/migration"
	handlers "newsapi/internal/http/handler"
	"newsapi/internal/logger"
	"newsapi/internal/otel"
	"newsapi/internal/repository/mongodb"
	"newsapi/internal/service"
	"newsapi/internal/storage"
)

// @title						Education News API
// @version					1.0
// @description				News articles, update notices, admin sessions and image uploads.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		fatal(log, "tracing_init_failed", err)
	}

	db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		fatal(log, "database_connect_failed", err)
	}
	log.Info("database_connected", "database", cfg.Mongo.Database)

	if err := migration.EnsureIndexes(ctx, db, log, int32(cfg.Mongo.NewsTTLSeconds)); err != nil {
		fatal(log, "database_index_failed", err)
	}

	// Uploaded images live on local disk or in a MinIO bucket
	objStore, err := storage.New(cfg)
	if err != nil {
		fatal(log, "storage_init_failed", err)
	}

	secret := []byte(cfg.Auth.SecretKey)
	if len(secret) == 0 {
		if secret, err = auth.RandomSecret(32); err != nil {
			fatal(log, "secret_init_failed", err)
		}
		log.Warn("jwt_secret_generated", "reason", "JWT_SECRET_KEY is not set; sessions end on restart")
	}

	// Initialize repositories and services
	articles := mongodb.NewArticleMongo(db.Collection(database.CollectionNews))
	updates := mongodb.NewUpdateMongo(db.Collection(database.CollectionUpdates))
	admins := mongodb.NewAdminMongo(db.Collection(database.CollectionAdmins))
	uploads := mongodb.NewUploadMongo(db.Collection(database.CollectionUploads))

	deps := handlers.Deps{
		DB:                   db,
		News:                 service.NewNewsService(articles),
		Updates:              service.NewUpdatesService(updates),
		Auth:                 service.NewAuthService(admins, secret, cfg.Auth.TokenTTL),
		Uploads:              service.NewUploadService(objStore, uploads, cfg.Upload.PublicBaseURL),
		RequireAuthForWrites: cfg.Auth.RequireAuthForWrites,
	}

	app, err := newServer(cfg, log, prometheus.DefaultRegisterer, deps)
	if err != nil {
		fatal(log, "server_init_failed", err)
	}

	go func() {
		log.Info("server_starting", "port", cfg.Port, "storage_backend", cfg.Upload.Backend)
		if err := app.Listen(":" + cfg.Port); err != nil {
			fatal(log, "server_listen_failed", err)
		}
	}()

	<-ctx.Done()
	log.Info("server_shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server_shutdown_failed", "error", err.Error())
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", "error", err.Error())
	}
	if err := db.Close(shutdownCtx); err != nil {
		log.Error("database_close_failed", "error", err.Error())
	}

	log.Info("server_exited")
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err.Error())
	os.Exit(1)
}

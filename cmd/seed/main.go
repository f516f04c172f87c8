// Command seed performs out-of-band maintenance on the news database: creating the first
// admin, resetting an admin password and loading sample content.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"newsapi/internal/config"
	"newsapi/internal/database"
	"newsapi/internal/logger"
	"newsapi/internal/repository/mongodb"
	"newsapi/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location())

	if err := newApp(cfg, log).Run(os.Args); err != nil {
		log.Error("seed_failed", "error", err.Error())
		os.Exit(1)
	}
}

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "email",
			Usage:   "admin email",
			EnvVars: []string{"ADMIN_EMAIL"},
			Value:   "admin@example.com",
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "admin password",
			EnvVars:  []string{"ADMIN_PASSWORD"},
			Required: true,
		},
	}
}

func newApp(cfg *config.AppConfig, log *slog.Logger) *cli.App {
	return &cli.App{
		Name:  "seed",
		Usage: "maintenance tasks for the education news database",
		Commands: []*cli.Command{
			{
				Name:  "admin",
				Usage: "create the admin account unless it already exists",
				Flags: credentialFlags(),
				Action: func(c *cli.Context) error {
					return withMongo(c.Context, cfg, func(ctx context.Context, db *database.Mongo) error {
						authSvc := service.NewAuthService(mongodb.NewAdminMongo(db.Collection(database.CollectionAdmins)), nil, 0)
						return seedAdmin(ctx, authSvc, log, c.String("email"), c.String("password"))
					})
				},
			},
			{
				Name:  "reset-password",
				Usage: "replace the password of an existing admin",
				Flags: credentialFlags(),
				Action: func(c *cli.Context) error {
					return withMongo(c.Context, cfg, func(ctx context.Context, db *database.Mongo) error {
						authSvc := service.NewAuthService(mongodb.NewAdminMongo(db.Collection(database.CollectionAdmins)), nil, 0)
						if err := authSvc.ResetPassword(ctx, c.String("email"), c.String("password")); err != nil {
							return fmt.Errorf("reset password for %s: %w", c.String("email"), err)
						}
						log.Info("admin_password_reset", "email", c.String("email"))
						return nil
					})
				},
			},
			{
				Name:  "data",
				Usage: "load sample news articles and update notices",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "delete existing news and updates first",
						Value: true,
					},
				},
				Action: func(c *cli.Context) error {
					return withMongo(c.Context, cfg, func(ctx context.Context, db *database.Mongo) error {
						target := dataTarget{
							News:    mongodb.NewArticleMongo(db.Collection(database.CollectionNews)),
							Updates: mongodb.NewUpdateMongo(db.Collection(database.CollectionUpdates)),
						}
						if c.Bool("clear") {
							target.Clear = []clearer{
								db.Collection(database.CollectionNews),
								db.Collection(database.CollectionUpdates),
							}
						}
						return seedData(ctx, target, log, time.Now().UTC())
					})
				},
			},
		},
	}
}

// withMongo connects, runs fn and disconnects.
func withMongo(ctx context.Context, cfg *config.AppConfig, fn func(context.Context, *database.Mongo) error) error {
	db, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(closeCtx)
	}()
	return fn(ctx, db)
}

func seedAdmin(ctx context.Context, authSvc service.AuthService, log *slog.Logger, email, password string) error {
	created, err := authSvc.CreateSeedAdmin(ctx, email, password)
	if err != nil {
		return fmt.Errorf("create admin %s: %w", email, err)
	}
	if !created {
		log.Info("admin_exists", "email", email)
		return nil
	}
	log.Info("admin_created", "email", email)
	return nil
}

// Command server runs the conversion API: registration, login, and the
// authenticated credit and conversion endpoints.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/convertapi/api"
	"github.com/kbukum/convertapi/auth"
	"github.com/kbukum/convertapi/auth/password"
	"github.com/kbukum/convertapi/auth/token"
	"github.com/kbukum/convertapi/config"
	"github.com/kbukum/convertapi/conversion"
	"github.com/kbukum/convertapi/credit"
	"github.com/kbukum/convertapi/database"
	"github.com/kbukum/convertapi/logger"
	"github.com/kbukum/convertapi/server"
	"github.com/kbukum/convertapi/server/endpoint"
	"github.com/kbukum/convertapi/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewDefault("convertapi").Fatal("Configuration error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Init(cfg.Log)
	log := logger.New(&cfg.Log, cfg.Base.Name)

	tokenCfg, err := cfg.Auth.TokenConfig()
	if err != nil {
		log.Fatal("Key material error", map[string]interface{}{"error": err.Error()})
	}
	authority, err := token.NewAuthority(tokenCfg)
	if err != nil {
		log.Fatal("Token authority error", map[string]interface{}{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("Database connection error", map[string]interface{}{"error": err.Error()})
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(
			&user.User{},
			&credit.Account{},
			&credit.Transaction{},
			&conversion.Conversion{},
		); err != nil {
			log.Fatal("Migration error", map[string]interface{}{"error": err.Error()})
		}
	}

	users := user.NewStore(db, log)
	credits := credit.NewStore(db, log)
	conversions := conversion.NewStore(db, log)

	hasher := password.NewHasher(password.Config{
		BcryptCost: cfg.Auth.BcryptCost,
		MinLength:  cfg.Auth.PasswordMinLength,
	})
	authService := auth.NewService(api.CredentialSource(users), hasher, authority, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(cfg.Base.Name, endpoint.Check{
		Name: "database",
		Ping: db.PingContext,
	})

	handler := api.NewHandler(users, credits, conversions, authService, hasher, cfg.Credits.InitialBalance, log)
	handler.RegisterRoutes(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Server start error", map[string]interface{}{"error": err.Error()})
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	if err := srv.Stop(context.Background()); err != nil {
		log.Error("Shutdown error", map[string]interface{}{"error": err.Error()})
	}
}

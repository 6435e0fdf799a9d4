package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/db"
	"github.com/rogerio-castellano/retail-pos/internal/logger"
	"github.com/rogerio-castellano/retail-pos/internal/models"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

const usage = `usage: migrator <command> [flags]

commands:
  up     apply all pending migrations
  down   roll back every migration
  seed   create a shop and an admin user owning it
         -shop NAME -username NAME -password SECRET`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Database.URL == "" {
		fmt.Fprintln(os.Stderr, "database.url must be set (POS_DATABASE_URL)")
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.L()
	defer log.Sync()

	switch os.Args[1] {
	case "up":
		if err := db.MigrateUp(cfg.Database.URL); err != nil {
			log.Fatal("migration up failed", zap.Error(err))
		}
		log.Info("migrations applied")
	case "down":
		if err := db.MigrateDown(cfg.Database.URL); err != nil {
			log.Fatal("migration down failed", zap.Error(err))
		}
		log.Info("migrations rolled back")
	case "seed":
		if err := seed(cfg, os.Args[2:]); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func seed(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	shopName := fs.String("shop", "Main shop", "name of the shop to create")
	username := fs.String("username", "admin", "admin username")
	password := fs.String("password", os.Getenv("POS_SEED_PASSWORD"), "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*password) < 6 {
		return fmt.Errorf("password must have at least 6 characters")
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	shop, err := repo.NewPostgresDimensionRepository(database).CreateShop(ctx, models.Shop{Name: *shopName})
	if err != nil {
		return fmt.Errorf("create shop: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user, err := repo.NewPostgresUserRepository(database).CreateUser(ctx, models.User{
		Username:     *username,
		PasswordHash: string(hashed),
		Role:         models.RoleAdmin,
		ShopIDs:      []uuid.UUID{shop.ID},
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	logger.L().Info("seeded",
		zap.Stringer("shop_id", shop.ID),
		zap.String("shop", shop.Name),
		zap.Stringer("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return nil
}

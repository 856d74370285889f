package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/naiastudio/storefront/app/configs"
	"github.com/naiastudio/storefront/app/db/fakers"
	"github.com/naiastudio/storefront/app/db/seeders"
	"github.com/naiastudio/storefront/app/helpers"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/models/migrations"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Load the launch catalog into the database",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "fake",
						Usage: "also generate this many demo products",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}

					n := int(c.Int("fake"))
					if n <= 0 {
						return nil
					}
					var categories []models.Category
					if err := db.Find(&categories).Error; err != nil {
						return err
					}
					for i := 0; i < n; i++ {
						var category *models.Category
						if len(categories) > 0 {
							category = &categories[rand.Intn(len(categories))]
						}
						if err := db.Create(fakers.ProductFaker(category)).Error; err != nil {
							return err
						}
					}
					log.Printf("Generated %d demo products", n)
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create an admin panel user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					userRepo := repositories.NewUserRepository(db)

					username := c.String("username")
					existing, err := userRepo.GetByUsername(ctx, username)
					if err != nil {
						return err
					}
					if existing != nil {
						return fmt.Errorf("user %q already exists", username)
					}

					hash, err := helpers.HashPassword(c.String("password"))
					if err != nil {
						return err
					}
					if err := userRepo.Create(ctx, &models.User{
						ID:       uuid.New().String(),
						Username: username,
						Password: hash,
					}); err != nil {
						return err
					}
					log.Printf("Created user %q", username)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate a new session signing key for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("Key generation complete. Copy the key to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

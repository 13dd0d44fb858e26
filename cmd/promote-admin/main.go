package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jmuir/stagedoor-api/internal/config"
	"github.com/jmuir/stagedoor-api/internal/database"
	"github.com/jmuir/stagedoor-api/internal/models"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
)

// Promotes an existing profile to admin by email. Useful for bootstrap
// when the allow-list cannot be changed without a redeploy.
func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	profiles := services.NewProfileService(store.NewPostgres(db))

	profile, err := profiles.ResolveByEmail(ctx, email)
	if err != nil {
		log.Fatalf("No profile found with email: %s", email)
	}

	if profile.Role == models.RoleAdmin {
		fmt.Printf("%s is already an admin\n", email)
		return
	}

	if err := profiles.SetRole(ctx, profile.ID, models.RoleAdmin); err != nil {
		log.Fatalf("Failed to promote profile: %v", err)
	}

	fmt.Printf("Successfully promoted %s to admin\n", email)
}

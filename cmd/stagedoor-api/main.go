package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmuir/stagedoor-api/internal/blob"
	"github.com/jmuir/stagedoor-api/internal/config"
	"github.com/jmuir/stagedoor-api/internal/database"
	"github.com/jmuir/stagedoor-api/internal/handlers"
	authmw "github.com/jmuir/stagedoor-api/internal/middleware"
	"github.com/jmuir/stagedoor-api/internal/services"
	"github.com/jmuir/stagedoor-api/internal/store"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
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

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	blobs, err := blob.NewMinio(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to blob storage: %v", err)
	}

	documents := store.NewPostgres(db)

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	identityService := services.NewIdentityService(db)
	tokenService := services.NewTokenService(db)
	profileService := services.NewProfileService(documents)
	galleryService := services.NewGalleryService(documents)
	sponsorService := services.NewSponsorService(documents)
	announcementService := services.NewAnnouncementService(documents)
	photoService := services.NewPhotoService(blobs, profileService, galleryService)

	authHandler := handlers.NewAuthHandler(cfg, identityService, profileService, tokenService, jwtService)
	userHandler := handlers.NewUserHandler(profileService, galleryService)
	galleryHandler := handlers.NewGalleryHandler(galleryService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	photoHandler := handlers.NewPhotoHandler(photoService, profileService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	// Public site content. Reads need no session.
	api.Get("/cast", userHandler.ListCast)
	api.Get("/cast/:id", userHandler.GetCastMember)
	api.Get("/cast/:id/photos", galleryHandler.ListForMember)
	api.Get("/gallery", galleryHandler.List)
	api.Get("/sponsors", sponsorHandler.List)
	api.Get("/announcements", announcementHandler.List)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/users/me", userHandler.GetMe)
	protected.Patch("/users/me", userHandler.UpdateMe)
	protected.Post("/users/me/photo", photoHandler.UploadMe)
	protected.Delete("/users/me/photo", photoHandler.RemoveMe)

	// Portal management lives under its own prefix so the wildcard user
	// routes never collide with /users/me. The admin gate re-checks the
	// stored profile on every request and fails closed when the role
	// cannot be read.
	admin := api.Group("/admin")
	admin.Use(authmw.Auth(jwtService))
	admin.Use(authmw.AdminRequired(profileService))

	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Patch("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Patch("/users/:id/role", userHandler.SetRole)
	admin.Post("/users/:id/photo", photoHandler.Upload)
	admin.Delete("/users/:id/photo", photoHandler.Remove)

	admin.Post("/gallery", galleryHandler.Create)
	admin.Patch("/gallery/:id", galleryHandler.Update)
	admin.Delete("/gallery/:id", galleryHandler.Delete)
	admin.Post("/cast-photos", galleryHandler.CreateCastPhoto)
	admin.Delete("/cast-photos/:id", galleryHandler.DeleteCastPhoto)

	admin.Post("/sponsors", sponsorHandler.Create)
	admin.Patch("/sponsors/:id", sponsorHandler.Update)
	admin.Delete("/sponsors/:id", sponsorHandler.Delete)

	admin.Post("/announcements", announcementHandler.Create)
	admin.Patch("/announcements/:id", announcementHandler.Update)
	admin.Delete("/announcements/:id", announcementHandler.Delete)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

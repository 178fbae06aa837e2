package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fbverify/config"
	"fbverify/internal/database"
	"fbverify/internal/repository"
	"fbverify/internal/router"
	"fbverify/internal/settings"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	options := repository.NewOptionRepository(db)
	settingsSvc := settings.NewService(options)
	settings.NewRegistrar(settingsSvc, &cfg.Verification).Register()
	log.Printf("[settings] registered %q on page %q", cfg.Verification.OptionName, cfg.Verification.Page)
	if cfg.Admin.PasswordHash == "" {
		log.Printf("[server] ADMIN_PASSWORD_HASH not set: admin login disabled")
	}

	engine := router.Setup(cfg, options, settingsSvc)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("[server] listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[server] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("[server] stopped")
}

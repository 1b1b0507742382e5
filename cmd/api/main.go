package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planloom/planloom-backend/config"
	"github.com/planloom/planloom-backend/internal/bootstrap"
	cronjob "github.com/planloom/planloom-backend/internal/calendar/cron"
)

const serviceName = "planloom-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer db.Close()

	if err := bootstrap.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	r, svc := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Cfg:         cfg,
	})

	if rdb != nil && cfg.Redis.WarmSpec != "" {
		warmer := cronjob.NewCacheWarmer(cfg.Redis.WarmSpec, svc.WarmCache)
		if err := warmer.Start(); err != nil {
			log.Fatalf("cache warmer: %v", err)
		}
		defer warmer.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

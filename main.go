package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolku_backend/internals/configs"
	database "schoolku_backend/internals/databases"
	middlewares "schoolku_backend/internals/middlewares"
	routes "schoolku_backend/internals/route"
	"schoolku_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	app := routes.NewApp()
	middlewares.SetupMiddlewares(app, configs.CorsOrigins)

	// DB connect + migrate + pool + warm-up (skip semua kalau DB_DRIVER=memory)
	database.ConnectDB()
	if database.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Migrate(ctx, database.DB); err != nil {
			cancel()
			log.Fatalf("[ERROR] migrasi gagal: %v", err)
		}
		cancel()
	}
	database.TunePool()
	database.WarmUpQueries()

	// scheduler setelah DB siap
	if database.DB != nil {
		reaper := scheduler.NewTrashReaper(database.DB, scheduler.TrashReaperConfig{
			CronSchedule:  configs.ReaperCron,
			RetentionDays: configs.ReaperRetentionDays,
			DryRun:        configs.ReaperDryRun,
		})
		c, err := reaper.Start()
		if err != nil {
			log.Fatalf("[ERROR] %v", err)
		}
		defer c.Stop()
	}

	routes.SetupRoutes(app, database.DB, routes.Options{
		JWTSecret:    configs.JWTSecret,
		JWTTTL:       configs.JWTTTL,
		AuthRequired: configs.AuthRequired,
	})

	// Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("[INFO] Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}

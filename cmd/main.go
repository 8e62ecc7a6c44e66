// finishingtouch-intake-service
//
// Estimation and job-intake backend for the home-services site.
// Exposes a REST API used by the intake pages to implement:
//   - estimate(type, intake)   — deterministic price/hour quote, no writes
//   - createJob(type, intake)  — job + contractor slots + private detail
//   - myJobs query             — list the client's jobs
//
// Every created job publishes EVENT_JOB_CREATED to Redis for the contractor
// board feed; a cron loop publishes EVENT_JOB_REMINDER for scheduled jobs.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finishingtouch/intake-service/internal/config"
	"finishingtouch/intake-service/internal/db"
	"finishingtouch/intake-service/internal/estimate"
	"finishingtouch/intake-service/internal/intake"
	"finishingtouch/intake-service/internal/notify"
	"finishingtouch/intake-service/internal/reminder"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[intake-service] Config error: %v", err)
	}

	rates, err := estimate.LoadRates(cfg.RatesFile)
	if err != nil {
		log.Fatalf("[intake-service] Rates error: %v", err)
	}
	log.Printf("[intake-service] Rate tables loaded — version %s", rates.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[intake-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[intake-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[intake-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[intake-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[intake-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[intake-service] Redis connected ✓")

	// ── Service wiring ───────────────────────────────────────────────────────
	notifier := notify.New(cfg.NotifyEndpoint)
	svc := intake.NewService(pool, rdb, notifier, rates, intake.Options{
		CompanyCutPct: cfg.CompanyCutPct,
		IncludePII:    cfg.NotifyIncludePII,
	})

	// ── Reminder cron ────────────────────────────────────────────────────────
	sched := reminder.New(pool, rdb, cfg.ReminderIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[intake-service] Reminder scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := intake.NewHandler(svc, cfg.BookingURL)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[intake-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[intake-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[intake-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[intake-service] Shutdown error: %v", err)
	}
	log.Println("[intake-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "intake-service",
		"version": version,
	})
}

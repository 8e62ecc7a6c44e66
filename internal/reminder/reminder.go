// Package reminder wires up the cron job that publishes day-before and
// day-of reminders for scheduled jobs.
package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and manages the reminder scan loop.
type Scheduler struct {
	cron *cron.Cron
	pool *pgxpool.Pool
	rdb  *redis.Client
	spec string // cron spec, e.g. "@every 1h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(pool *pgxpool.Pool, rdb *redis.Client, intervalHours int) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		pool: pool,
		rdb:  rdb,
		spec: fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one scan
// immediately so restarts don't delay pending reminders by a full interval.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[reminder] Cron started — spec: %s", s.spec)

	go s.runScan(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[reminder] Cron stopped")
}

// dueJob is one open job inside the reminder horizon.
type dueJob struct {
	id          string
	clientID    string
	serviceType string
	scheduledAt time.Time
	dayBefore   bool
	dayOf       bool
}

// runScan finds open jobs scheduled inside the next 24 hours and publishes
// the reminder events their flags still owe.
func (s *Scheduler) runScan(ctx context.Context) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, client_id, service_type, scheduled_at,
		        reminder_day_before, reminder_day_of
		 FROM jobs
		 WHERE status = 'open'
		   AND scheduled_at IS NOT NULL
		   AND scheduled_at BETWEEN NOW() AND NOW() + INTERVAL '24 hours'
		   AND (reminder_day_before = false OR reminder_day_of = false)`,
	)
	if err != nil {
		log.Printf("[reminder] scan query error: %v", err)
		return
	}
	defer rows.Close()

	var due []dueJob
	for rows.Next() {
		var j dueJob
		if err := rows.Scan(&j.id, &j.clientID, &j.serviceType, &j.scheduledAt, &j.dayBefore, &j.dayOf); err != nil {
			log.Printf("[reminder] scan error: %v", err)
			return
		}
		due = append(due, j)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[reminder] rows error: %v", err)
		return
	}

	sent := 0
	for _, j := range due {
		if !j.dayBefore {
			if err := s.publish(ctx, j, "day_before", "reminder_day_before"); err != nil {
				log.Printf("[reminder] job %s day-before: %v — continuing", j.id, err)
				continue
			}
			sent++
		}
		// Day-of fires once the job is within three hours.
		if !j.dayOf && time.Until(j.scheduledAt) <= 3*time.Hour {
			if err := s.publish(ctx, j, "day_of", "reminder_day_of"); err != nil {
				log.Printf("[reminder] job %s day-of: %v — continuing", j.id, err)
				continue
			}
			sent++
		}
	}

	if sent > 0 {
		log.Printf("[reminder] Scan complete — %d reminder(s) published", sent)
	}
}

// publish emits EVENT_JOB_REMINDER and marks the corresponding flag so the
// reminder fires exactly once.
func (s *Scheduler) publish(ctx context.Context, j dueJob, kind, flagColumn string) error {
	event, _ := json.Marshal(map[string]string{
		"type":        "EVENT_JOB_REMINDER",
		"kind":        kind,
		"jobId":       j.id,
		"clientId":    j.clientID,
		"serviceType": j.serviceType,
		"scheduledAt": j.scheduledAt.Format(time.RFC3339),
	})
	if err := s.rdb.Publish(ctx, "EVENT_JOB_REMINDER", event).Err(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	_, err := s.pool.Exec(ctx,
		`UPDATE jobs SET `+flagColumn+` = true, updated_at = NOW() WHERE id = $1`,
		j.id,
	)
	if err != nil {
		return fmt.Errorf("mark flag: %w", err)
	}
	return nil
}

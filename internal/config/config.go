// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the intake service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	CompanyCutPct         int    // share of the flat rate kept before the slot split
	NotifyEndpoint        string // form-inbox endpoint for the intake email trail; empty disables it
	NotifyIncludePII      bool   // forward address/phone/email on the trail
	BookingURL            string // external scheduling link returned with estimates
	RatesFile             string // optional YAML overrides for the canonical rate tables
	ReminderIntervalHours int    // how often the reminder cron fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("INTAKE_PORT")
	if port == "" {
		port = "8083"
	}

	cut := 30
	if s := os.Getenv("COMPANY_CUT_PCT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 || v > 100 {
			return nil, fmt.Errorf("COMPANY_CUT_PCT must be an integer between 0 and 100, got %q", s)
		}
		cut = v
	}

	interval := 1
	if s := os.Getenv("REMINDER_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REMINDER_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		Port:                  port,
		DatabaseURL:           dbURL,
		RedisURL:              redisURL,
		CompanyCutPct:         cut,
		NotifyEndpoint:        os.Getenv("NOTIFY_ENDPOINT"),
		NotifyIncludePII:      os.Getenv("NOTIFY_INCLUDE_PII") == "true",
		BookingURL:            os.Getenv("BOOKING_URL"),
		RatesFile:             os.Getenv("RATES_FILE"),
		ReminderIntervalHours: interval,
	}, nil
}

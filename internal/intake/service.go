package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"finishingtouch/intake-service/internal/estimate"
	"finishingtouch/intake-service/internal/notify"
)

// ─── Options ─────────────────────────────────────────────────────────────────

// Options carries the static knobs of the materialization transaction.
type Options struct {
	CompanyCutPct int
	SlotsByType   map[estimate.ServiceType]int
	IncludePII    bool // forward contact fields on the notification trail
	NotifyTimeout time.Duration
}

// DefaultSlotsByType is the per-service-type contractor slot count used when
// the caller does not override it.
func DefaultSlotsByType() map[estimate.ServiceType]int {
	return map[estimate.ServiceType]int{
		estimate.ServiceCleaning:   1,
		estimate.ServiceOrganizing: 2,
		estimate.ServiceDecor:      2,
		estimate.ServiceHoliday:    2,
	}
}

// ─── Service ─────────────────────────────────────────────────────────────────

// Service encapsulates the job materialization transaction. It has no
// dependency on net/http — it can be used by any transport layer.
type Service struct {
	pool     *pgxpool.Pool
	rdb      *redis.Client
	notifier *notify.Client
	rates    *estimate.Rates
	opts     Options
}

// NewService returns a configured Service. Zero Options fields fall back to
// sensible defaults (30% cut, per-type slot table, 10s notify timeout).
func NewService(pool *pgxpool.Pool, rdb *redis.Client, notifier *notify.Client, rates *estimate.Rates, opts Options) *Service {
	if opts.CompanyCutPct == 0 {
		opts.CompanyCutPct = 30
	}
	if opts.SlotsByType == nil {
		opts.SlotsByType = DefaultSlotsByType()
	}
	if opts.NotifyTimeout == 0 {
		opts.NotifyTimeout = 10 * time.Second
	}
	return &Service{pool: pool, rdb: rdb, notifier: notifier, rates: rates, opts: opts}
}

// Rates exposes the canonical rate tables for estimate-only callers.
func (s *Service) Rates() *estimate.Rates { return s.rates }

// ─── Job materialization ─────────────────────────────────────────────────────

// CreateJobFromIntake persists a Job, its contractor Slots, and the
// private-detail record in one transaction, then publishes a job-created
// event and fires the best-effort notification trail.
//
// Returns ErrNotAuthenticated (no writes performed) when client.ID is empty,
// or a *ValidationError when the service type is missing or unknown.
func (s *Service) CreateJobFromIntake(ctx context.Context, client Identity, req CreateJobRequest) (string, error) {
	if client.ID == "" {
		return "", ErrNotAuthenticated
	}

	svc, err := estimate.ParseServiceType(req.ServiceType)
	if err != nil {
		return "", &ValidationError{Msg: err.Error()}
	}

	in := req.Intake
	if in == nil {
		in = estimate.Intake{}
	}

	est := s.normalizeEstimate(svc, in, req.Estimate)
	contractorsNeeded := s.slotsFor(svc, req.Slots)
	_, pays := SplitPayout(est.Price, contractorsNeeded, s.opts.CompanyCutPct)

	now := time.Now().UTC()
	job := Job{
		ID:                 uuid.NewString(),
		ServiceType:        string(svc),
		Status:             string(JobOpen),
		ScheduledAt:        scheduledAtFrom(in),
		Zip:                coalesce(in, "zip", "postal", "area"),
		Area:               coalesce(in, "area", "city"),
		Window:             req.Window,
		Summary:            req.Summary,
		FlatRate:           est.Price,
		EstimatedTeamHours: est.TeamHours,
		ContractorsNeeded:  contractorsNeeded,
		ContractorIDs:      []string{},
		ClientID:           client.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if job.Window == "" {
		job.Window = windowLabel(now)
	}
	if job.Summary == "" {
		job.Summary = estimate.DefaultSummary(svc, in, est)
	}

	rawIntake, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshal intake: %w", err)
	}

	// Job, slots and private detail land atomically: the store supports
	// transactions, so a failed slot write can never leave a half-created
	// job on the board.
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO jobs
		   (id, service_type, status, scheduled_at, zip, area, window_label,
		    summary, flat_rate, estimated_team_hours, contractors_needed,
		    contractor_ids, client_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		job.ID, job.ServiceType, job.Status, job.ScheduledAt, job.Zip, job.Area,
		job.Window, job.Summary, job.FlatRate, job.EstimatedTeamHours,
		job.ContractorsNeeded, job.ContractorIDs, job.ClientID,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert job: %w", err)
	}

	for i, pay := range pays {
		_, err = tx.Exec(ctx,
			`INSERT INTO job_slots (job_id, slot_number, status, contractor_id, pay)
			 VALUES ($1, $2, $3, '', $4)`,
			job.ID, i+1, string(SlotOpen), pay,
		)
		if err != nil {
			return "", fmt.Errorf("insert slot %d: %w", i+1, err)
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO job_private (job_id, client_email, intake, client_price, teardown_price, created_at)
		 VALUES ($1, $2, $3::jsonb, $4, $5, $6)`,
		job.ID, client.Email, string(rawIntake), est.Price, est.TeardownPrice, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert private detail: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	// Publish EVENT_JOB_CREATED for the contractor board feed (non-fatal).
	event, _ := json.Marshal(map[string]string{
		"type":        "EVENT_JOB_CREATED",
		"jobId":       job.ID,
		"serviceType": job.ServiceType,
		"clientId":    job.ClientID,
	})
	if err := s.rdb.Publish(ctx, "EVENT_JOB_CREATED", event).Err(); err != nil {
		slog.Warn("publish EVENT_JOB_CREATED failed", "jobId", job.ID, "err", err)
	}

	// Fire-and-forget notification trail. It runs detached with its own
	// bounded deadline so a slow endpoint can neither fail nor delay the
	// already-committed transaction.
	fields := s.notificationFields(job, est, in, client)
	go func() {
		nctx, cancel := context.WithTimeout(context.Background(), s.opts.NotifyTimeout)
		defer cancel()
		if err := s.notifier.Send(nctx, fields); err != nil {
			slog.Warn("intake notification failed", "jobId", job.ID, "err", err)
		}
	}()

	return job.ID, nil
}

// normalizeEstimate fills a missing or partial estimate: absent → computed
// from the canonical rates; a zero price falls back to an alternate
// "flatRate" intake field when one was submitted.
func (s *Service) normalizeEstimate(svc estimate.ServiceType, in estimate.Intake, given *estimate.Estimate) estimate.Estimate {
	if given == nil {
		return s.rates.Estimate(svc, in)
	}
	est := *given
	if est.Price == 0 {
		if fr := in.Num("flatRate", 0); fr > 0 {
			est.Price = int(math.Round(fr))
		}
	}
	return est
}

// slotsFor resolves the contractor slot count: explicit override first, then
// the per-service-type default, floored at one.
func (s *Service) slotsFor(svc estimate.ServiceType, override int) int {
	n := override
	if n <= 0 {
		n = s.opts.SlotsByType[svc]
	}
	if n < 1 {
		n = 1
	}
	return n
}

// notificationFields builds the flat field set for the notification trail.
// Contact fields ride along only when the PII toggle is on.
func (s *Service) notificationFields(job Job, est estimate.Estimate, in estimate.Intake, client Identity) map[string]string {
	rawIntake, _ := json.Marshal(in)
	fields := map[string]string{
		"_subject":     fmt.Sprintf("New %s Intake → Job Created", capitalize(job.ServiceType)),
		"service_type": job.ServiceType,
		"job_id":       job.ID,
		"client_uid":   client.ID,
		"window":       job.Window,
		"price":        usd(job.FlatRate),
		"team_hours":   fmt.Sprintf("%g", job.EstimatedTeamHours),
		"slots_needed": fmt.Sprintf("%d", job.ContractorsNeeded),
		"intake_json":  string(rawIntake),
	}
	if job.ScheduledAt != nil {
		fields["service_date"] = job.ScheduledAt.Format(time.RFC3339)
	}
	if est.TeardownPrice > 0 {
		fields["teardown"] = usd(est.TeardownPrice)
	}
	if s.opts.IncludePII {
		fields["client_email"] = client.Email
		fields["address"] = in.Str("address", "")
		fields["phone"] = in.Str("phone", "")
	}
	return fields
}

// ─── Queries ─────────────────────────────────────────────────────────────────

const jobColumns = `id, service_type, status, scheduled_at, zip, area,
	window_label, summary, flat_rate, estimated_team_hours,
	contractors_needed, contractor_ids, client_id, created_at, updated_at`

// ListJobs returns all jobs owned by the given client, newest first.
func (s *Service) ListJobs(ctx context.Context, clientID string) ([]Job, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("listJobs query: %w", err)
	}
	defer rows.Close()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(
			&j.ID, &j.ServiceType, &j.Status, &j.ScheduledAt, &j.Zip, &j.Area,
			&j.Window, &j.Summary, &j.FlatRate, &j.EstimatedTeamHours,
			&j.ContractorsNeeded, &j.ContractorIDs, &j.ClientID,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("listJobs scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetJob returns a single job with its slots, validating ownership.
func (s *Service) GetJob(ctx context.Context, clientID, jobID string) (*Job, []Slot, error) {
	var j Job
	err := s.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND client_id = $2`,
		jobID, clientID,
	).Scan(
		&j.ID, &j.ServiceType, &j.Status, &j.ScheduledAt, &j.Zip, &j.Area,
		&j.Window, &j.Summary, &j.FlatRate, &j.EstimatedTeamHours,
		&j.ContractorsNeeded, &j.ContractorIDs, &j.ClientID,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	rows, err := s.pool.Query(ctx,
		`SELECT job_id, slot_number, status, contractor_id, pay
		 FROM job_slots WHERE job_id = $1 ORDER BY slot_number`,
		jobID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("getJob slots query: %w", err)
	}
	defer rows.Close()

	slots := make([]Slot, 0, j.ContractorsNeeded)
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.JobID, &sl.SlotNumber, &sl.Status, &sl.ContractorID, &sl.Pay); err != nil {
			return nil, nil, fmt.Errorf("getJob slots scan: %w", err)
		}
		slots = append(slots, sl)
	}
	return &j, slots, rows.Err()
}

// ─── Normalization helpers ───────────────────────────────────────────────────

// coalesce returns the first non-blank intake value among keys.
func coalesce(in estimate.Intake, keys ...string) string {
	for _, k := range keys {
		if v := in.Str(k, ""); v != "" {
			return v
		}
	}
	return ""
}

// windowLabel is the human-friendly fallback window text.
func windowLabel(t time.Time) string {
	return t.Weekday().String()[:3] + " (flexible)"
}

// scheduledAtFrom derives an exact datetime from the optional date (+ start
// time, default 09:00) intake fields. Returns nil when no usable date was
// given.
func scheduledAtFrom(in estimate.Intake) *time.Time {
	date := in.Str("date", "")
	if date == "" {
		return nil
	}
	start := in.Str("start", "09:00")
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+start, time.Local)
	if err != nil {
		at, err = time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil
		}
		at = at.Add(9 * time.Hour)
	}
	return &at
}

func usd(n int) string {
	return fmt.Sprintf("$%d", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when a job is missing or does not belong to the
// caller.
var ErrNotFound = fmt.Errorf("job not found")

// ErrNotAuthenticated means no writes were performed and the caller should
// be redirected to login. It is an outcome, not a validation failure.
var ErrNotAuthenticated = fmt.Errorf("authentication required")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

// Package intake contains the job materialization logic: turning a computed
// estimate into a persisted Job, its contractor Slots, and the restricted
// private-detail record. It is transport-agnostic; the HTTP handlers live in
// handler.go and delegate everything to Service.
package intake

import (
	"fmt"
	"time"

	"finishingtouch/intake-service/internal/estimate"
)

// JobStatus values mirror the job_status enum in PostgreSQL.
type JobStatus string

const (
	JobOpen      JobStatus = "open"
	JobFilled    JobStatus = "filled"
	JobCancelled JobStatus = "cancelled"
	JobCompleted JobStatus = "completed"
)

// ParseJobStatus converts a raw string to a JobStatus, returning an error
// for unknown values.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case JobOpen, JobFilled, JobCancelled, JobCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// SlotStatus values mirror the slot_status enum in PostgreSQL.
type SlotStatus string

const (
	SlotOpen      SlotStatus = "open"
	SlotClaimed   SlotStatus = "claimed"
	SlotCompleted SlotStatus = "completed"
)

// ParseSlotStatus converts a raw string to a SlotStatus, returning an error
// for unknown values.
func ParseSlotStatus(s string) (SlotStatus, error) {
	st := SlotStatus(s)
	switch st {
	case SlotOpen, SlotClaimed, SlotCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown slot status %q", s)
}

// Identity is the authenticated caller. An empty ID means "not
// authenticated" — the transaction refuses to write and asks the caller to
// log in instead.
type Identity struct {
	ID    string
	Email string
}

// Job is the public job record shown on the contractor board. Sensitive
// figures and raw intake live in PrivateDetail, never here.
type Job struct {
	ID                 string     `json:"id"`
	ServiceType        string     `json:"serviceType"`
	Status             string     `json:"status"`
	ScheduledAt        *time.Time `json:"scheduledAt"`
	Zip                string     `json:"zip"`
	Area               string     `json:"area"`
	Window             string     `json:"window"`
	Summary            string     `json:"summary"`
	FlatRate           int        `json:"flatRate"`
	EstimatedTeamHours float64    `json:"estimatedTeamHours"`
	ContractorsNeeded  int        `json:"contractorsNeeded"`
	ContractorIDs      []string   `json:"contractorIds"`
	ClientID           string     `json:"clientId"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Slot is one contractor assignment unit within a job, carrying its own
// payout share of the flat rate.
type Slot struct {
	JobID        string `json:"jobId"`
	SlotNumber   int    `json:"slotNumber"`
	Status       string `json:"status"`
	ContractorID string `json:"contractorId"`
	Pay          int    `json:"pay"`
}

// PrivateDetail holds the PII-bearing raw intake and true financial figures
// for a job. Row-level access is restricted to the job owner and admins by
// the persistence layer.
type PrivateDetail struct {
	JobID         string          `json:"jobId"`
	ClientEmail   string          `json:"clientEmail"`
	Intake        estimate.Intake `json:"intake"`
	ClientPrice   int             `json:"clientPrice"`
	TeardownPrice int             `json:"teardownPrice"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateJobRequest is the input to Service.CreateJobFromIntake.
// Estimate may be nil, in which case the canonical rates compute it; a
// partially populated estimate is filled in via the normalization rules.
type CreateJobRequest struct {
	ServiceType string             `json:"serviceType"`
	Intake      estimate.Intake    `json:"intake"`
	Estimate    *estimate.Estimate `json:"estimate,omitempty"`
	Window      string             `json:"window,omitempty"`
	Summary     string             `json:"summary,omitempty"`
	Slots       int                `json:"slots,omitempty"`
}

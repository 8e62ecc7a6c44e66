// HTTP handlers for the intake service.
//
// All authenticated routes expect x-user-id / x-user-email headers forwarded
// by the gateway.
//
// Routes:
//
//	POST /intakes/{type}/estimate → quote only, no auth, no writes
//	POST /intakes/{type}          → quote + materialize job/slots/private
//	GET  /jobs                    → list caller's jobs
//	GET  /jobs/{id}               → single job with slots
package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"finishingtouch/intake-service/internal/estimate"
)

// Handler holds shared dependencies for the HTTP surface.
type Handler struct {
	svc        *Service
	bookingURL string
}

// NewHandler returns a configured Handler. bookingURL is the external
// scheduling link returned alongside estimates.
func NewHandler(svc *Service, bookingURL string) *Handler {
	return &Handler{svc: svc, bookingURL: bookingURL}
}

// RegisterRoutes mounts all intake-service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/intakes/", h.handleIntake)
	mux.HandleFunc("/jobs", h.handleJobs)
	mux.HandleFunc("/jobs/", h.handleJob)
}

// ─── Route dispatch ───────────────────────────────────────────────────────────

// handleIntake handles POST /intakes/{type} and POST /intakes/{type}/estimate.
func (h *Handler) handleIntake(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 2:
		h.createJob(w, r, parts[1])
	case len(parts) == 3 && parts[2] == "estimate":
		h.estimateOnly(w, r, parts[1])
	default:
		jsonError(w, "invalid path", http.StatusNotFound)
	}
}

// ─── Individual handlers ──────────────────────────────────────────────────────

// estimateResponse is the quote shape shown to the client before booking.
type estimateResponse struct {
	ServiceType string            `json:"serviceType"`
	Estimate    estimate.Estimate `json:"estimate"`
	Hint        string            `json:"hint"`
	BookingURL  string            `json:"bookingUrl,omitempty"`
}

// estimateOnly computes and returns a quote without touching storage, so the
// client always sees their ballpark even during a persistence outage.
func (h *Handler) estimateOnly(w http.ResponseWriter, r *http.Request, rawType string) {
	svc, err := estimate.ParseServiceType(rawType)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body struct {
		Intake estimate.Intake `json:"intake"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Intake == nil {
		body.Intake = estimate.Intake{}
	}

	est := h.svc.Rates().Estimate(svc, body.Intake)
	jsonOK(w, estimateResponse{
		ServiceType: string(svc),
		Estimate:    est,
		Hint:        estimate.Hint(svc, body.Intake, est.TeamHours),
		BookingURL:  h.bookingURL,
	})
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request, rawType string) {
	client := Identity{
		ID:    r.Header.Get("x-user-id"),
		Email: r.Header.Get("x-user-email"),
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	req.ServiceType = rawType

	jobID, err := h.svc.CreateJobFromIntake(r.Context(), client, req)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{
				"error":    "authentication required",
				"redirect": fmt.Sprintf("login.html?next=%s", url.QueryEscape(r.URL.Path)),
			})
		case errors.As(err, &verr):
			jsonError(w, verr.Msg, http.StatusBadRequest)
		default:
			jsonError(w, "database error", http.StatusInternalServerError)
		}
		return
	}

	jsonOK(w, map[string]string{"jobId": jobID})
}

// handleJobs handles GET /jobs.
func (h *Handler) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	jobs, err := h.svc.ListJobs(r.Context(), userID)
	if err != nil {
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}
	jsonOK(w, jobs)
}

// handleJob handles GET /jobs/{id}.
func (h *Handler) handleJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}

	job, slots, err := h.svc.GetJob(r.Context(), userID, parts[1])
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			jsonError(w, "job not found", http.StatusNotFound)
			return
		}
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]any{"job": job, "slots": slots})
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

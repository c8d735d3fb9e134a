package rest

import (
	"context"
	"net/http"
	"time"
)

const readyTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// ProbeHandler serves the liveness and readiness probes.
type ProbeHandler struct {
	db      dbPinger
	version string
	now     func() time.Time
}

// NewProbeHandler creates a ProbeHandler.
func NewProbeHandler(db dbPinger, version string) *ProbeHandler {
	return &ProbeHandler{db: db, version: version, now: time.Now}
}

// ProbeResponse is the body of /live and /ready.
type ProbeResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Database  *DBStatus `json:"database,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DBStatus reports the result of a database ping.
type DBStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *ProbeHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: h.now(),
	})
}

// Ready pings the database: 200 when reachable, 503 otherwise.
func (h *ProbeHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	start := h.now()
	err := h.db.Ping(ctx)
	latency := h.now().Sub(start)

	resp := ProbeResponse{Version: h.version, Timestamp: h.now()}
	if err != nil {
		resp.Status = "down"
		resp.Database = &DBStatus{Status: "down"}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Status = "ok"
	resp.Database = &DBStatus{Status: "ok", Latency: latency.String()}
	writeJSON(w, http.StatusOK, resp)
}

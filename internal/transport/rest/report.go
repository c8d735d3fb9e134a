package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type reportService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	ExportBirths(ctx context.Context, w io.Writer, filter domain.BirthFilter) error
	ExportSanitaryEvents(ctx context.Context, w io.Writer, filter domain.SanitaryFilter) error
}

// ReportHandler serves the dashboard and spreadsheet exports.
type ReportHandler struct {
	reports reportService
	log     *slog.Logger
	now     func() time.Time
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: logger.With("handler", "report"), now: time.Now}
}

// Dashboard handles GET /reports/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.reports.Dashboard(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(d))
}

// ExportBirths handles GET /reports/births.xlsx?mother_tag=&farm_id=.
func (h *ReportHandler) ExportBirths(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBirthFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.export(w, r, "partos", func(ctx context.Context, buf io.Writer) error {
		return h.reports.ExportBirths(ctx, buf, filter)
	})
}

// ExportSanitaryEvents handles GET /reports/sanitary.xlsx?tag=&farm_id=.
func (h *ReportHandler) ExportSanitaryEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSanitaryFilter(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	h.export(w, r, "sanidad", func(ctx context.Context, buf io.Writer) error {
		return h.reports.ExportSanitaryEvents(ctx, buf, filter)
	})
}

// export buffers the workbook so a failure can still be reported as JSON.
func (h *ReportHandler) export(w http.ResponseWriter, r *http.Request, name string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(r.Context(), &buf); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, h.now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

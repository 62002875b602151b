package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"chrono/internal/convert"
	"chrono/pkg/platform/httputil"
	"chrono/pkg/requestcontext"
	"chrono/pkg/temporal"
)

// Service defines the interface for timestamp conversion operations.
type Service interface {
	Parse(ctx context.Context, value, zoneSpec string) (temporal.Timestamp, error)
	Convert(ctx context.Context, value, zoneSpec string) (temporal.Timestamp, error)
	Format(ctx context.Context, value, pattern string) (string, error)
	ParseBatch(ctx context.Context, values []string) ([]convert.BatchResult, error)
	Now(ctx context.Context, zoneSpec string) (temporal.Timestamp, error)
	Zones(ctx context.Context) []temporal.TimeZone
}

// Handler wires conversion endpoints to the convert service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a convert handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts conversion endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/timestamps/parse", h.HandleParse)
	r.Post("/timestamps/convert", h.HandleConvert)
	r.Post("/timestamps/format", h.HandleFormat)
	r.Post("/timestamps/parse-batch", h.HandleParseBatch)
	r.Get("/now", h.HandleNow)
	r.Get("/timezones", h.HandleZones)
}

// HandleParse handles POST /v1/timestamps/parse.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ts, err := h.service.Parse(ctx, req.Value, req.Zone)
	if err != nil {
		h.logger.WarnContext(ctx, "timestamp parse rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromTimestamp(ts))
}

// HandleConvert handles POST /v1/timestamps/convert.
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ConvertRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ts, err := h.service.Convert(ctx, req.Value, req.Zone)
	if err != nil {
		h.logger.WarnContext(ctx, "timestamp conversion rejected",
			"request_id", requestID,
			"zone", req.Zone,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromTimestamp(ts))
}

// HandleFormat handles POST /v1/timestamps/format.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, req.Value, req.Pattern)
	if err != nil {
		h.logger.WarnContext(ctx, "timestamp format rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FormatResponse{Formatted: formatted})
}

// HandleParseBatch handles POST /v1/timestamps/parse-batch.
func (h *Handler) HandleParseBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ParseBatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.ParseBatch(ctx, req.Values)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "batch parsed",
		"request_id", requestID,
		"count", len(results),
	)
	httputil.WriteJSON(w, http.StatusOK, FromBatchResults(results))
}

// HandleNow handles GET /v1/now.
func (h *Handler) HandleNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ts, err := h.service.Now(ctx, r.URL.Query().Get("zone"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromTimestamp(ts))
}

// HandleZones handles GET /v1/timezones.
func (h *Handler) HandleZones(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromZones(h.service.Zones(r.Context())))
}

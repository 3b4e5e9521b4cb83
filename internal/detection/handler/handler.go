package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storesense/internal/catalog"
	"storesense/internal/detection"
	"storesense/internal/geo"
	"storesense/internal/platform/middleware"
	"storesense/internal/wireless"
	"storesense/pkg/httputil"
)

// Service defines the detection operations the HTTP layer exposes.
type Service interface {
	DetectAt(ctx context.Context, point geo.Point, observations []wireless.Observation) (detection.Result, error)
	Confirm(ctx context.Context, storeID string) error
	SelectManually(ctx context.Context, store catalog.Store) (detection.Result, error)
	Search(ctx context.Context, query string) ([]catalog.Store, error)
}

// Handler wires detection endpoints to the detection service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a detection handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts detection endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/detect", h.HandleDetect)
	r.Post("/v1/stores/{storeID}/confirm", h.HandleConfirm)
	r.Post("/v1/stores/select", h.HandleSelect)
	r.Get("/v1/stores/search", h.HandleSearch)
}

// HandleDetect handles POST /v1/detect requests. The device ships its fix
// and wireless scan in the body; the engine does the rest server-side.
func (h *Handler) HandleDetect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.Decode[DetectRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.DetectAt(ctx, req.Point(), req.Observations())
	if err != nil {
		h.logger.ErrorContext(ctx, "detection failed",
			"request_id", middleware.GetRequestID(ctx),
			"device_id", middleware.GetDeviceID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "detection completed",
		"request_id", middleware.GetRequestID(ctx),
		"device_id", middleware.GetDeviceID(ctx),
		"method", string(result.Method),
		"confidence", result.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleConfirm handles POST /v1/stores/{storeID}/confirm requests.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	storeID := chi.URLParam(r, "storeID")
	if storeID == "" {
		httputil.WriteBadRequest(w, "store id is required")
		return
	}

	if err := h.service.Confirm(ctx, storeID); err != nil {
		h.logger.ErrorContext(ctx, "store confirmation failed",
			"request_id", middleware.GetRequestID(ctx),
			"store_id", storeID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ConfirmResponse{StoreID: storeID, Confirmed: true})
}

// HandleSelect handles POST /v1/stores/select requests.
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.Decode[SelectRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.SelectManually(ctx, req.Store())
	if err != nil {
		h.logger.ErrorContext(ctx, "manual store selection failed",
			"request_id", middleware.GetRequestID(ctx),
			"store_id", req.ID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "store selected manually",
		"request_id", middleware.GetRequestID(ctx),
		"device_id", middleware.GetDeviceID(ctx),
		"store_id", req.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleSearch handles GET /v1/stores/search requests.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		httputil.WriteBadRequest(w, "query parameter q is required")
		return
	}

	stores, err := h.service.Search(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "store search failed",
			"request_id", middleware.GetRequestID(ctx),
			"query", query,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, SearchResponse{Stores: storesToResponse(stores)})
}

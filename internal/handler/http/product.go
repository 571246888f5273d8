package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/roynafshi-stack/asus-model-api/internal/domain"
	"github.com/roynafshi-stack/asus-model-api/internal/service"
	"github.com/roynafshi-stack/asus-model-api/pkg/httputil"
	"github.com/roynafshi-stack/asus-model-api/pkg/logger"
)

// ProductHandler handles HTTP requests for the model info endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// HealthResponse is the JSON response of GET /api/health.
type HealthResponse struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}

// Health handles GET /api/health. It touches no upstream dependency.
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		OK:      true,
		Service: "asus-model-api",
		Time:    time.Now().UTC(),
	})
}

// Spec handles GET /api/spec?model=...
func (h *ProductHandler) Spec(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Spec(r.Context(), r.URL.Query().Get("model"))
	if err != nil {
		h.writeModelError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// Images handles GET /api/images?model=...
func (h *ProductHandler) Images(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Images(r.Context(), r.URL.Query().Get("model"))
	if err != nil {
		h.writeModelError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// Marketing handles GET /api/marketing?model=...&lang=...
func (h *ProductHandler) Marketing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.Marketing(q.Get("model"), q.Get("lang"))
	if err != nil {
		h.writeModelError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// writeModelError maps model resolution failures onto the error envelope:
// a missing model value is a 400, a model outside the registry is a 501
// carrying the supported prefix list.
func (h *ProductHandler) writeModelError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := logger.CorrelationIDFromContext(r.Context())

	if errors.Is(err, domain.ErrModelRequired) {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{
				Code:      "INVALID_INPUT",
				Message:   "model query parameter is required",
				RequestID: requestID,
			},
		})
		return
	}

	var unsupported *domain.UnsupportedModelError
	if errors.As(err, &unsupported) {
		httputil.WriteJSON(w, http.StatusNotImplemented, httputil.Response{
			Error: &httputil.ErrorResponse{
				Code:      "MODEL_NOT_SUPPORTED",
				Message:   unsupported.Error(),
				Supported: unsupported.Supported,
				RequestID: requestID,
			},
		})
		return
	}

	httputil.WriteError(w, r, err, h.logger)
}

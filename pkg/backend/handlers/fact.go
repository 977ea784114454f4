package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/facts"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/registry"
	"github.com/cecil-the-coder/animal-fact-kit/pkg/types"
)

// FactHandler serves GET /fact
type FactHandler struct {
	service     *facts.Service
	registry    *registry.Registry
	defaultKind string
}

// NewFactHandler creates the fact handler. defaultKind is used when a
// request carries no animal selector; it may itself be "any".
func NewFactHandler(service *facts.Service, reg *registry.Registry, defaultKind string) *FactHandler {
	if defaultKind == "" {
		defaultKind = types.KindAny.String()
	}
	return &FactHandler{
		service:     service,
		registry:    reg,
		defaultKind: defaultKind,
	}
}

// GetFact handles GET /fact?animal=<kind|any>. Success is a 200 with the
// canonical {"fact","animal"} body; failures map to 400 (unknown kind),
// 504 (upstream timeout), or 502 (any other provider failure).
func (h *FactHandler) GetFact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, r, http.StatusMethodNotAllowed, backendtypes.ErrorResponse{
			Error: "only GET is allowed",
		})
		return
	}

	selector := r.URL.Query().Get("animal")
	if selector == "" {
		selector = h.defaultKind
	}

	kind, err := h.registry.ParseKind(selector)
	if err != nil {
		SendError(w, r, http.StatusBadRequest, backendtypes.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	fact, err := h.service.GetFact(r.Context(), kind)
	if err != nil {
		h.sendServiceError(w, r, err)
		return
	}

	SendJSON(w, http.StatusOK, fact)
}

// sendServiceError maps a classified service failure to an HTTP response.
// The body carries the failing animal and a generic category, never the
// upstream payload.
func (h *FactHandler) sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var unsupported *types.UnsupportedKindError
	if errors.As(err, &unsupported) {
		SendError(w, r, http.StatusBadRequest, backendtypes.ErrorResponse{
			Error: unsupported.Error(),
		})
		return
	}

	var failed *types.ProviderFailedError
	if errors.As(err, &failed) {
		statusCode := http.StatusBadGateway
		category := "unknown"

		var provErr *types.ProviderError
		if errors.As(failed.Err, &provErr) {
			category = string(provErr.Code)
			if provErr.Code == types.ErrCodeTimeout {
				statusCode = http.StatusGatewayTimeout
			}
		}

		SendError(w, r, statusCode, backendtypes.ErrorResponse{
			Error:    fmt.Sprintf("failed to fetch a %s fact", failed.Kind),
			Animal:   failed.Kind.String(),
			Category: category,
		})
		return
	}

	SendError(w, r, http.StatusInternalServerError, backendtypes.ErrorResponse{
		Error: "an internal error occurred",
	})
}

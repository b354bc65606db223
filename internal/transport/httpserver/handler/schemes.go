package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	schemedomain "welfare-app-go/internal/domain/scheme"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createSchemeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Category    string `json:"category"`
}

type schemeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Eligibility string    `json:"eligibility"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type schemeEnvelope struct {
	Message string         `json:"message"`
	Scheme  schemeResponse `json:"scheme"`
}

func toSchemeResponse(s schemedomain.Scheme) schemeResponse {
	return schemeResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Eligibility: s.Eligibility,
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
	}
}

func (h *Handlers) ListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.Schemes.List(r.Context())
	if err != nil {
		h.log.InternalError("schemes.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "server error fetching schemes")
		return
	}

	response := make([]schemeResponse, 0, len(schemes))
	for _, s := range schemes {
		response = append(response, toSchemeResponse(s))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateScheme(w http.ResponseWriter, r *http.Request) {
	var req createSchemeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	scheme, err := h.Schemes.Create(r.Context(), actor, schemedomain.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Eligibility: req.Eligibility,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("schemes.create: forbidden", err, "actor", actor.Email)
			writeError(w, http.StatusForbidden, "only admins may add schemes")
		case errors.Is(err, schemedomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "all scheme fields are required")
		default:
			h.log.InternalError("schemes.create: create failed", err, "actor", actor.Email)
			writeError(w, http.StatusInternalServerError, "server error adding scheme")
		}
		return
	}

	writeJSON(w, http.StatusCreated, schemeEnvelope{
		Message: "Scheme added successfully",
		Scheme:  toSchemeResponse(*scheme),
	})
}

func (h *Handlers) DeleteScheme(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	if err := h.Schemes.Delete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("schemes.delete: forbidden", err, "actor", actor.Email)
			writeError(w, http.StatusForbidden, "only admins may delete schemes")
		case errors.Is(err, schemedomain.ErrSchemeNotFound):
			writeError(w, http.StatusNotFound, "scheme not found")
		default:
			h.log.InternalError("schemes.delete: delete failed", err, "actor", actor.Email, "scheme_id", id)
			writeError(w, http.StatusInternalServerError, "server error deleting scheme")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Scheme deleted successfully"})
}

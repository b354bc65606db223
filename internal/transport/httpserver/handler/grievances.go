package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	grievancedomain "welfare-app-go/internal/domain/grievance"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type fileGrievanceRequest struct {
	UserID   string `json:"userId"`
	Subject  string `json:"subject"`
	Details  string `json:"details"`
	Priority string `json:"priority"`
}

type updateGrievanceStatusRequest struct {
	Status string `json:"status"`
}

type grievanceResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Subject    string     `json:"subject"`
	Details    string     `json:"details"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	FiledAt    time.Time  `json:"filedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

type grievanceEnvelope struct {
	Message   string            `json:"message"`
	Grievance grievanceResponse `json:"grievance"`
}

func toGrievanceResponse(g grievancedomain.Grievance) grievanceResponse {
	return grievanceResponse{
		ID:         g.ID,
		UserID:     g.UserID,
		Subject:    g.Subject,
		Details:    g.Details,
		Priority:   g.Priority,
		Status:     g.Status,
		FiledAt:    g.FiledAt,
		ResolvedAt: g.ResolvedAt,
	}
}

func (h *Handlers) ListGrievances(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	grievances, err := h.Grievances.List(r.Context(), actor)
	if err != nil {
		h.log.InternalError("grievances.list: list failed", err, "actor", actor.Email)
		writeError(w, http.StatusInternalServerError, "server error fetching grievances")
		return
	}

	response := make([]grievanceResponse, 0, len(grievances))
	for _, g := range grievances {
		response = append(response, toGrievanceResponse(g))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) FileGrievance(w http.ResponseWriter, r *http.Request) {
	var req fileGrievanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	grievance, err := h.Grievances.File(r.Context(), actor, grievancedomain.FileInput{
		UserID:   req.UserID,
		Subject:  req.Subject,
		Details:  req.Details,
		Priority: req.Priority,
	})
	if err != nil {
		switch {
		case errors.Is(err, grievancedomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "all grievance fields are required")
		case errors.Is(err, grievancedomain.ErrInvalidPriority):
			writeError(w, http.StatusBadRequest, "priority must be low, medium, high, or critical")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("grievances.file: forbidden", err, "actor", actor.Email, "owner", req.UserID)
			writeError(w, http.StatusForbidden, "cannot file a grievance for another user")
		default:
			h.log.InternalError("grievances.file: create failed", err, "actor", actor.Email)
			writeError(w, http.StatusInternalServerError, "server error filing grievance")
		}
		return
	}

	writeJSON(w, http.StatusCreated, grievanceEnvelope{
		Message:   "Grievance filed successfully",
		Grievance: toGrievanceResponse(*grievance),
	})
}

func (h *Handlers) UpdateGrievanceStatus(w http.ResponseWriter, r *http.Request) {
	var req updateGrievanceStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

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

	grievance, err := h.Grievances.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, grievancedomain.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid status provided")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("grievances.update_status: forbidden", err, "actor", actor.Email)
			writeError(w, http.StatusForbidden, "only admins may update grievance status")
		case errors.Is(err, grievancedomain.ErrGrievanceNotFound):
			writeError(w, http.StatusNotFound, "grievance not found")
		default:
			h.log.InternalError("grievances.update_status: update failed", err, "actor", actor.Email, "grievance_id", id)
			writeError(w, http.StatusInternalServerError, "server error updating grievance status")
		}
		return
	}

	writeJSON(w, http.StatusOK, grievanceEnvelope{
		Message:   "Grievance status updated successfully",
		Grievance: toGrievanceResponse(*grievance),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	applicationdomain "welfare-app-go/internal/domain/application"
	"welfare-app-go/internal/domain/authz"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type submitApplicationRequest struct {
	UserID     string `json:"userId"`
	SchemeID   string `json:"schemeId"`
	SchemeName string `json:"schemeName"`
	Notes      string `json:"notes"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type applicationResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	SchemeID   string    `json:"schemeId"`
	SchemeName string    `json:"schemeName"`
	Notes      string    `json:"notes"`
	Status     string    `json:"status"`
	AppliedAt  time.Time `json:"appliedAt"`
}

type applicationEnvelope struct {
	Message     string              `json:"message"`
	Application applicationResponse `json:"application"`
}

func toApplicationResponse(a applicationdomain.Application) applicationResponse {
	return applicationResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		SchemeID:   a.SchemeID,
		SchemeName: a.SchemeName,
		Notes:      a.Notes,
		Status:     a.Status,
		AppliedAt:  a.AppliedAt,
	}
}

func (h *Handlers) ListApplications(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	applications, err := h.Applications.List(r.Context(), actor)
	if err != nil {
		h.log.InternalError("applications.list: list failed", err, "actor", actor.Email)
		writeError(w, http.StatusInternalServerError, "server error fetching applications")
		return
	}

	response := make([]applicationResponse, 0, len(applications))
	for _, a := range applications {
		response = append(response, toApplicationResponse(a))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	application, err := h.Applications.Submit(r.Context(), actor, applicationdomain.SubmitInput{
		UserID:     req.UserID,
		SchemeID:   req.SchemeID,
		SchemeName: req.SchemeName,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, applicationdomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "missing application details")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("applications.submit: forbidden", err, "actor", actor.Email, "owner", req.UserID)
			writeError(w, http.StatusForbidden, "cannot submit an application for another user")
		default:
			h.log.InternalError("applications.submit: create failed", err, "actor", actor.Email)
			writeError(w, http.StatusInternalServerError, "server error submitting application")
		}
		return
	}

	writeJSON(w, http.StatusCreated, applicationEnvelope{
		Message:     "Application submitted successfully",
		Application: toApplicationResponse(*application),
	})
}

func (h *Handlers) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req updateApplicationStatusRequest
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

	application, err := h.Applications.UpdateStatus(r.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, applicationdomain.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "status must be Approved or Rejected")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("applications.update_status: forbidden", err, "actor", actor.Email)
			writeError(w, http.StatusForbidden, "only admins may review applications")
		case errors.Is(err, applicationdomain.ErrApplicationNotFound):
			writeError(w, http.StatusNotFound, "application not found")
		default:
			h.log.InternalError("applications.update_status: update failed", err, "actor", actor.Email, "application_id", id)
			writeError(w, http.StatusInternalServerError, "server error updating application status")
		}
		return
	}

	writeJSON(w, http.StatusOK, applicationEnvelope{
		Message:     "Application status updated successfully",
		Application: toApplicationResponse(*application),
	})
}

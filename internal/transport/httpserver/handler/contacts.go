package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	contactdomain "welfare-app-go/internal/domain/contact"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type addContactRequest struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type updateContactRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Relationship *string `json:"relationship"`
}

type contactResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	CreatedAt    time.Time `json:"createdAt"`
}

type contactEnvelope struct {
	Message string          `json:"message"`
	Contact contactResponse `json:"contact"`
}

func toContactResponse(c contactdomain.EmergencyContact) contactResponse {
	return contactResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		Name:         c.Name,
		Phone:        c.Phone,
		Relationship: c.Relationship,
		CreatedAt:    c.CreatedAt,
	}
}

func (h *Handlers) ListEmergencyContacts(w http.ResponseWriter, r *http.Request) {
	ownerID := strings.TrimSpace(chi.URLParam(r, "userId"))
	if ownerID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	contacts, err := h.Contacts.ListByOwner(r.Context(), actor, ownerID)
	if err != nil {
		if errors.Is(err, authz.ErrForbidden) {
			h.log.BusinessError("contacts.list: forbidden", err, "actor", actor.Email, "owner", ownerID)
			writeError(w, http.StatusForbidden, "cannot view another user's emergency contacts")
			return
		}
		h.log.InternalError("contacts.list: list failed", err, "actor", actor.Email)
		writeError(w, http.StatusInternalServerError, "server error fetching emergency contacts")
		return
	}

	response := make([]contactResponse, 0, len(contacts))
	for _, c := range contacts {
		response = append(response, toContactResponse(c))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) AddEmergencyContact(w http.ResponseWriter, r *http.Request) {
	var req addContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	contact, err := h.Contacts.Add(r.Context(), actor, contactdomain.AddInput{
		UserID:       req.UserID,
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		switch {
		case errors.Is(err, contactdomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "all contact fields are required")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("contacts.add: forbidden", err, "actor", actor.Email, "owner", req.UserID)
			writeError(w, http.StatusForbidden, "cannot add a contact for another user")
		default:
			h.log.InternalError("contacts.add: create failed", err, "actor", actor.Email)
			writeError(w, http.StatusInternalServerError, "server error adding contact")
		}
		return
	}

	writeJSON(w, http.StatusCreated, contactEnvelope{
		Message: "Contact added successfully",
		Contact: toContactResponse(*contact),
	})
}

func (h *Handlers) UpdateEmergencyContact(w http.ResponseWriter, r *http.Request) {
	var req updateContactRequest
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

	contact, err := h.Contacts.Update(r.Context(), actor, id, contactdomain.UpdateInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		switch {
		case errors.Is(err, contactdomain.ErrContactNotFound):
			writeError(w, http.StatusNotFound, "Contact not found")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("contacts.update: forbidden", err, "actor", actor.Email, "contact_id", id)
			writeError(w, http.StatusForbidden, "only the owner may update this contact")
		case errors.Is(err, contactdomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "contact fields cannot be blank")
		default:
			h.log.InternalError("contacts.update: update failed", err, "actor", actor.Email, "contact_id", id)
			writeError(w, http.StatusInternalServerError, "server error updating contact")
		}
		return
	}

	writeJSON(w, http.StatusOK, contactEnvelope{
		Message: "Contact updated successfully",
		Contact: toContactResponse(*contact),
	})
}

func (h *Handlers) DeleteEmergencyContact(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Contacts.Delete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, contactdomain.ErrContactNotFound):
			writeError(w, http.StatusNotFound, "Contact not found")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("contacts.delete: forbidden", err, "actor", actor.Email, "contact_id", id)
			writeError(w, http.StatusForbidden, "only the owner may delete this contact")
		default:
			h.log.InternalError("contacts.delete: delete failed", err, "actor", actor.Email, "contact_id", id)
			writeError(w, http.StatusInternalServerError, "server error deleting contact")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Contact deleted successfully"})
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	listingdomain "welfare-app-go/internal/domain/listing"
	"welfare-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type publishListingRequest struct {
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContactInfo string `json:"contactInfo"`
}

type updateListingRequest struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ContactInfo *string `json:"contactInfo"`
}

type listingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ContactInfo string    `json:"contactInfo"`
	PostedAt    time.Time `json:"postedAt"`
}

type listingEnvelope struct {
	Message string          `json:"message"`
	Listing listingResponse `json:"listing"`
}

func toListingResponse(l listingdomain.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Type:        l.Type,
		Title:       l.Title,
		Description: l.Description,
		ContactInfo: l.ContactInfo,
		PostedAt:    l.PostedAt,
	}
}

func (h *Handlers) ListMarketplace(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Marketplace.List(r.Context())
	if err != nil {
		h.log.InternalError("marketplace.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "server error fetching marketplace listings")
		return
	}

	response := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		response = append(response, toListingResponse(l))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) PublishListing(w http.ResponseWriter, r *http.Request) {
	var req publishListingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "actor identity required")
		return
	}

	listing, err := h.Marketplace.Publish(r.Context(), actor, listingdomain.PublishInput{
		UserID:      req.UserID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, listingdomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "all listing fields are required")
		case errors.Is(err, listingdomain.ErrInvalidType):
			writeError(w, http.StatusBadRequest, "type must be book, equipment, or housing")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("marketplace.publish: forbidden", err, "actor", actor.Email, "owner", req.UserID)
			writeError(w, http.StatusForbidden, "cannot publish a listing for another user")
		default:
			h.log.InternalError("marketplace.publish: create failed", err, "actor", actor.Email)
			writeError(w, http.StatusInternalServerError, "server error adding listing")
		}
		return
	}

	writeJSON(w, http.StatusCreated, listingEnvelope{
		Message: "Listing added successfully",
		Listing: toListingResponse(*listing),
	})
}

func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var req updateListingRequest
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

	listing, err := h.Marketplace.Update(r.Context(), actor, id, listingdomain.UpdateInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		switch {
		case errors.Is(err, listingdomain.ErrListingNotFound):
			writeError(w, http.StatusNotFound, "listing not found")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("marketplace.update: forbidden", err, "actor", actor.Email, "listing_id", id)
			writeError(w, http.StatusForbidden, "only the owner may update this listing")
		case errors.Is(err, listingdomain.ErrInvalidType):
			writeError(w, http.StatusBadRequest, "type must be book, equipment, or housing")
		case errors.Is(err, listingdomain.ErrMissingField):
			writeError(w, http.StatusBadRequest, "listing fields cannot be blank")
		default:
			h.log.InternalError("marketplace.update: update failed", err, "actor", actor.Email, "listing_id", id)
			writeError(w, http.StatusInternalServerError, "server error updating listing")
		}
		return
	}

	writeJSON(w, http.StatusOK, listingEnvelope{
		Message: "Listing updated successfully",
		Listing: toListingResponse(*listing),
	})
}

func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Marketplace.Delete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, listingdomain.ErrListingNotFound):
			writeError(w, http.StatusNotFound, "marketplace listing not found")
		case errors.Is(err, authz.ErrForbidden):
			h.log.BusinessError("marketplace.delete: forbidden", err, "actor", actor.Email, "listing_id", id)
			writeError(w, http.StatusForbidden, "only the owner may delete this listing")
		default:
			h.log.InternalError("marketplace.delete: delete failed", err, "actor", actor.Email, "listing_id", id)
			writeError(w, http.StatusInternalServerError, "server error deleting listing")
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Marketplace listing deleted successfully"})
}

package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-salesforce-cart/logger"
	"go-salesforce-cart/models"
	"go-salesforce-cart/service"
)

// ContactController handles the contact CRUD endpoints.
type ContactController struct {
	svc *service.SalesforceService
	log *logger.Logger
}

// NewContactController creates a new ContactController.
func NewContactController(svc *service.SalesforceService, log *logger.Logger) *ContactController {
	return &ContactController{svc: svc, log: log}
}

// Create handles POST /api/salesforce/contacts.
func (cc *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if in.FirstName == "" || in.LastName == "" {
		respondError(w, http.StatusBadRequest, "FirstName and lastName are required")
		return
	}

	contact, err := cc.svc.CreateContact(r.Context(), in)
	if err != nil {
		cc.log.Error("create contact failed", "error", err)
		respondInternal(w, "Failed to create contact", err)
		return
	}
	respondJSON(w, http.StatusCreated, contact)
}

// Get handles GET /api/salesforce/contacts/{id}.
func (cc *ContactController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	contact, err := cc.svc.GetContact(r.Context(), id)
	if err != nil {
		cc.log.Error("get contact failed", "id", id, "error", err)
		respondInternal(w, "Failed to get contact", err)
		return
	}
	if contact == nil {
		respondError(w, http.StatusNotFound, "Contact not found")
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

// List handles GET /api/salesforce/contacts. An accountId query parameter
// switches to the per-account lookup, which ignores pagination.
func (cc *ContactController) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	var (
		contacts []models.Contact
		err      error
	)
	if accountID := r.URL.Query().Get("accountId"); accountID != "" {
		contacts, err = cc.svc.GetContactsByAccount(r.Context(), accountID)
	} else {
		contacts, err = cc.svc.ListContacts(r.Context(), limit, offset)
	}
	if err != nil {
		cc.log.Error("list contacts failed", "error", err)
		respondInternal(w, "Failed to list contacts", err)
		return
	}
	respondList(w, contacts, limit, offset, len(contacts))
}

// Update handles PUT and PATCH /api/salesforce/contacts/{id}.
func (cc *ContactController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in models.UpdateContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	contact, err := cc.svc.UpdateContact(r.Context(), id, in)
	if err != nil {
		cc.log.Error("update contact failed", "id", id, "error", err)
		respondInternal(w, "Failed to update contact", err)
		return
	}
	if contact == nil {
		respondError(w, http.StatusNotFound, "Contact not found")
		return
	}
	respondJSON(w, http.StatusOK, contact)
}

// Delete handles DELETE /api/salesforce/contacts/{id}.
func (cc *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := cc.svc.DeleteContact(r.Context(), id)
	if err != nil {
		cc.log.Error("delete contact failed", "id", id, "error", err)
		respondInternal(w, "Failed to delete contact", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Contact not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-salesforce-cart/logger"
	"go-salesforce-cart/models"
	"go-salesforce-cart/service"
)

// AccountController handles the account CRUD endpoints.
type AccountController struct {
	svc *service.SalesforceService
	log *logger.Logger
}

// NewAccountController creates a new AccountController.
func NewAccountController(svc *service.SalesforceService, log *logger.Logger) *AccountController {
	return &AccountController{svc: svc, log: log}
}

// Create handles POST /api/salesforce/accounts.
func (ac *AccountController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if in.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}

	account, err := ac.svc.CreateAccount(r.Context(), in)
	if err != nil {
		ac.log.Error("create account failed", "error", err)
		respondInternal(w, "Failed to create account", err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

// Get handles GET /api/salesforce/accounts/{id}.
func (ac *AccountController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	account, err := ac.svc.GetAccount(r.Context(), id)
	if err != nil {
		ac.log.Error("get account failed", "id", id, "error", err)
		respondInternal(w, "Failed to get account", err)
		return
	}
	if account == nil {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// List handles GET /api/salesforce/accounts.
func (ac *AccountController) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	accounts, err := ac.svc.ListAccounts(r.Context(), limit, offset)
	if err != nil {
		ac.log.Error("list accounts failed", "error", err)
		respondInternal(w, "Failed to list accounts", err)
		return
	}
	respondList(w, accounts, limit, offset, len(accounts))
}

// Update handles PUT and PATCH /api/salesforce/accounts/{id}.
func (ac *AccountController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in models.UpdateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	account, err := ac.svc.UpdateAccount(r.Context(), id, in)
	if err != nil {
		ac.log.Error("update account failed", "id", id, "error", err)
		respondInternal(w, "Failed to update account", err)
		return
	}
	if account == nil {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}
	respondJSON(w, http.StatusOK, account)
}

// Delete handles DELETE /api/salesforce/accounts/{id}. Deleting an account
// does not cascade to contacts or carts referencing it.
func (ac *AccountController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := ac.svc.DeleteAccount(r.Context(), id)
	if err != nil {
		ac.log.Error("delete account failed", "id", id, "error", err)
		respondInternal(w, "Failed to delete account", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Account not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

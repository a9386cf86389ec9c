package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-salesforce-cart/logger"
	"go-salesforce-cart/models"
	"go-salesforce-cart/service"
)

// CartController handles the cart endpoints, including the item operations.
type CartController struct {
	svc *service.SalesforceService
	log *logger.Logger
}

// NewCartController creates a new CartController.
func NewCartController(svc *service.SalesforceService, log *logger.Logger) *CartController {
	return &CartController{svc: svc, log: log}
}

// Create handles POST /api/salesforce/carts.
func (cc *CartController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateCartInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := cc.svc.CreateCart(r.Context(), in)
	if err != nil {
		cc.log.Error("create cart failed", "error", err)
		respondInternal(w, "Failed to create cart", err)
		return
	}
	respondJSON(w, http.StatusCreated, cart)
}

// Get handles GET /api/salesforce/carts/{id}.
func (cc *CartController) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	cart, err := cc.svc.GetCart(r.Context(), id)
	if err != nil {
		cc.log.Error("get cart failed", "id", id, "error", err)
		respondInternal(w, "Failed to get cart", err)
		return
	}
	if cart == nil {
		respondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// List handles GET /api/salesforce/carts. An accountId query parameter
// switches to the per-account lookup, which ignores pagination.
func (cc *CartController) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	var (
		carts []models.Cart
		err   error
	)
	if accountID := r.URL.Query().Get("accountId"); accountID != "" {
		carts, err = cc.svc.GetCartsByAccount(r.Context(), accountID)
	} else {
		carts, err = cc.svc.ListCarts(r.Context(), limit, offset)
	}
	if err != nil {
		cc.log.Error("list carts failed", "error", err)
		respondInternal(w, "Failed to list carts", err)
		return
	}
	respondList(w, carts, limit, offset, len(carts))
}

// AddItem handles POST /api/salesforce/carts/{id}/items.
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in models.AddItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := cc.svc.AddToCart(r.Context(), id, in)
	if err != nil {
		cc.log.Error("add to cart failed", "id", id, "error", err)
		respondInternal(w, "Failed to add item to cart", err)
		return
	}
	if cart == nil {
		respondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/salesforce/carts/{id}/items. The productId
// comes in the request body; removing a productId the cart does not hold is
// a no-op that still bumps the cart's UpdatedAt.
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in models.RemoveItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := cc.svc.RemoveFromCart(r.Context(), id, in)
	if err != nil {
		cc.log.Error("remove from cart failed", "id", id, "error", err)
		respondInternal(w, "Failed to remove item from cart", err)
		return
	}
	if cart == nil {
		respondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// Delete handles DELETE /api/salesforce/carts/{id}.
func (cc *CartController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	deleted, err := cc.svc.DeleteCart(r.Context(), id)
	if err != nil {
		cc.log.Error("delete cart failed", "id", id, "error", err)
		respondInternal(w, "Failed to delete cart", err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package routes

import (
	"github.com/gorilla/mux"

	"go-salesforce-cart/controllers"
	"go-salesforce-cart/middleware"
	"go-salesforce-cart/utils"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(
	router *mux.Router,
	health *controllers.HealthController,
	auth *controllers.AuthController,
	accounts *controllers.AccountController,
	contacts *controllers.ContactController,
	carts *controllers.CartController,
	tokens *utils.TokenManager,
) {
	// Health routes
	router.HandleFunc("/health", health.Check).Methods("GET")
	router.HandleFunc("/test-delay", health.TestDelay).Methods("GET")

	// Public auth routes
	router.HandleFunc("/api/auth/register", auth.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", auth.Login).Methods("POST")

	// Protected auth routes
	protected := router.PathPrefix("/api/auth").Subrouter()
	protected.Use(middleware.Auth(tokens))
	protected.HandleFunc("/me", auth.Me).Methods("GET")

	sf := router.PathPrefix("/api/salesforce").Subrouter()

	// Account routes
	sf.HandleFunc("/accounts", accounts.Create).Methods("POST")
	sf.HandleFunc("/accounts", accounts.List).Methods("GET")
	sf.HandleFunc("/accounts/{id}", accounts.Get).Methods("GET")
	sf.HandleFunc("/accounts/{id}", accounts.Update).Methods("PUT", "PATCH")
	sf.HandleFunc("/accounts/{id}", accounts.Delete).Methods("DELETE")

	// Contact routes
	sf.HandleFunc("/contacts", contacts.Create).Methods("POST")
	sf.HandleFunc("/contacts", contacts.List).Methods("GET")
	sf.HandleFunc("/contacts/{id}", contacts.Get).Methods("GET")
	sf.HandleFunc("/contacts/{id}", contacts.Update).Methods("PUT", "PATCH")
	sf.HandleFunc("/contacts/{id}", contacts.Delete).Methods("DELETE")

	// Cart routes
	sf.HandleFunc("/carts", carts.Create).Methods("POST")
	sf.HandleFunc("/carts", carts.List).Methods("GET")
	sf.HandleFunc("/carts/{id}", carts.Get).Methods("GET")
	sf.HandleFunc("/carts/{id}/items", carts.AddItem).Methods("POST")
	sf.HandleFunc("/carts/{id}/items", carts.RemoveItem).Methods("DELETE")
	sf.HandleFunc("/carts/{id}", carts.Delete).Methods("DELETE")
}

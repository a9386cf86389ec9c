package controllers

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"go-salesforce-cart/logger"
	"go-salesforce-cart/middleware"
	"go-salesforce-cart/repository"
	"go-salesforce-cart/utils"
)

// AuthController handles registration, login and the token echo endpoint.
type AuthController struct {
	users  *repository.UserRepository
	tokens *utils.TokenManager
	email  *utils.EmailService
	log    *logger.Logger
}

// NewAuthController creates a new AuthController. email may be nil.
func NewAuthController(users *repository.UserRepository, tokens *utils.TokenManager, email *utils.EmailService, log *logger.Logger) *AuthController {
	return &AuthController{users: users, tokens: tokens, email: email, log: log}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type userInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userInfo `json:"user"`
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	existing, err := ac.users.FindByEmail(r.Context(), creds.Email)
	if err != nil {
		ac.log.Error("registration lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		ac.log.Error("password hashing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := ac.users.Create(r.Context(), creds.Email, string(hashed), creds.Name)
	if err != nil {
		ac.log.Error("user creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := ac.tokens.Generate(user.ID, user.Email)
	if err != nil {
		ac.log.Error("token generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := ac.email.SendWelcomeEmail(user.Email, user.Name); err != nil {
		// Mail failure must not fail registration.
		ac.log.Warn("welcome email failed", "email", user.Email, "error", err)
	}

	respondJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userInfo{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := ac.users.FindByEmail(r.Context(), creds.Email)
	if err != nil {
		ac.log.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.tokens.Generate(user.ID, user.Email)
	if err != nil {
		ac.log.Error("token generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userInfo{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}

// Me handles GET /api/auth/me behind the auth middleware.
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"userId": claims.UserID,
		"email":  claims.Email,
	})
}

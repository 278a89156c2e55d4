package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/sneakfits/internal/api/middleware"
	"github.com/example/sneakfits/internal/auth"
	"github.com/example/sneakfits/internal/domain/commission"
)

// AuthHandlers handles authentication-related HTTP requests. The store runs
// on a single shared credential: whoever logs in picks which party they are
// and proves knowledge of the store password.
type AuthHandlers struct {
	passwordHash string
	jwtService   *auth.JWTService
}

// NewAuthHandlers creates a new AuthHandlers instance. passwordHash is the
// bcrypt hash of the shared store password.
func NewAuthHandlers(passwordHash string, jwtService *auth.JWTService) *AuthHandlers {
	return &AuthHandlers{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Party    string `json:"party"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Party   string `json:"party"`
	Message string `json:"message,omitempty"`
}

// Login handles login with the shared store credential
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	party, err := commission.ParseParty(req.Party)
	if err != nil {
		respondJSONError(w, "Unknown party", http.StatusBadRequest)
		return
	}

	if !auth.CheckPassword(req.Password, h.passwordHash) {
		respondJSONError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	h.setAuthCookies(w, string(party), r)

	respondJSON(w, http.StatusOK, AuthResponse{
		Party:   string(party),
		Message: "Login successful",
	})
}

// Logout clears the auth cookies
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookies(w)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshCookie, err := r.Cookie("refresh_token")
	if err != nil {
		respondJSONError(w, "No refresh token", http.StatusUnauthorized)
		return
	}

	party, err := h.jwtService.ValidateRefreshToken(refreshCookie.Value)
	if err != nil {
		h.clearAuthCookies(w)
		respondJSONError(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	h.setAuthCookies(w, party, r)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Token refreshed",
	})
}

// Me returns the current authenticated party
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		respondJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{Party: claims.Party})
}

// Helper methods

func (h *AuthHandlers) setAuthCookies(w http.ResponseWriter, party string, r *http.Request) {
	accessToken, accessExpiry, _ := h.jwtService.GenerateAccessToken(party)
	refreshToken, refreshExpiry, _ := h.jwtService.GenerateRefreshToken(party)

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		Expires:  accessExpiry,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/auth/refresh",
		Expires:  refreshExpiry,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandlers) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth/refresh",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

func respondJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

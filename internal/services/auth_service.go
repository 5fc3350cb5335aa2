package services

import (
	cryptorand "crypto/rand"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/argon2"

	"github.com/coopkiosk/backend/internal/middleware"
	"github.com/coopkiosk/backend/internal/models"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// AuthService authenticates members by username and 4-digit PIN and manages
// their sessions.
type AuthService struct {
	db        *sql.DB
	sessions  *middleware.SessionManager
	validator *ValidationHelper
}

// LoginRequest is the mobile login payload
// @Description Login request structure
type LoginRequest struct {
	Username string `json:"username" example:"juan"`
	PIN      string `json:"pin" example:"1234"`
}

// LoginResponse is returned on successful login
// @Description Login response structure
type LoginResponse struct {
	Success   bool          `json:"success" example:"true"`
	Member    models.Member `json:"member"`
	Message   string        `json:"message" example:"Welcome back, Juan Dela Cruz!"`
	SessionID string        `json:"session_id"`
}

func NewAuthService(db *sql.DB, sessions *middleware.SessionManager) *AuthService {
	return &AuthService{
		db:        db,
		sessions:  sessions,
		validator: NewValidationHelper(),
	}
}

// Login authenticates a member
// @Summary Member login
// @Description Authenticate a member with username and 4-digit PIN; sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid PIN"
// @Failure 403 {object} ErrorResponse "Account inactive"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /login/ [post]
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[AUTH] Mobile login attempt from IP: %s", r.RemoteAddr)

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[AUTH] Login failed - malformed body: %v", err)
		SendErrorResponse(w, "Invalid JSON format", http.StatusBadRequest, nil)
		return
	}

	username := strings.TrimSpace(req.Username)
	pin := strings.TrimSpace(req.PIN)

	if username == "" {
		SendErrorResponse(w, "Username is required", http.StatusBadRequest, nil)
		return
	}
	if pin == "" {
		SendErrorResponse(w, "PIN is required", http.StatusBadRequest, nil)
		return
	}
	if !pinPattern.MatchString(pin) {
		SendErrorResponse(w, "PIN must be exactly 4 digits", http.StatusBadRequest, nil)
		return
	}

	mc, err := fetchMemberByUsername(s.db, username)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("[AUTH] Unknown username: %s", username)
			SendErrorResponse(w, "User not found or account is inactive", http.StatusNotFound, nil)
			return
		}
		log.Printf("[AUTH] Member lookup failed for %s: %v", username, err)
		SendErrorResponse(w, "An unexpected error occurred. Please try again later.", http.StatusInternalServerError, nil)
		return
	}

	if !mc.IsActive {
		log.Printf("[AUTH] Inactive account login attempt: %s", username)
		SendErrorResponse(w, "Account is inactive", http.StatusForbidden, nil)
		return
	}

	if !verifyPin(pin, mc.PinHash) {
		log.Printf("[AUTH] Invalid PIN for member: %s", username)
		SendErrorResponse(w, "Invalid PIN. Please try again.", http.StatusUnauthorized, nil)
		return
	}

	sid, err := s.sessions.Create(r.Context(), mc.ID)
	if err != nil {
		log.Printf("[AUTH] Session creation failed for member %d: %v", mc.ID, err)
		SendErrorResponse(w, "Authentication failed. Please try again.", http.StatusInternalServerError, nil)
		return
	}

	log.Printf("[AUTH] Login successful for member %d (%s)", mc.ID, username)
	http.SetCookie(w, s.sessions.Cookie(sid))
	SendJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Member:    mc.Member,
		Message:   fmt.Sprintf("Welcome back, %s!", mc.FullName),
		SessionID: sid,
	})
}

// Logout ends the current session
// @Summary Member logout
// @Description Destroy the current session and expire the cookie; idempotent
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logout successful"
// @Router /logout/ [post]
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request) {
	if sid, ok := r.Context().Value("sessionID").(string); ok && sid != "" {
		if err := s.sessions.Destroy(r.Context(), sid); err != nil {
			log.Printf("[AUTH] Failed to destroy session: %v", err)
		}
	}

	http.SetCookie(w, s.sessions.ExpiredCookie())
	SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}

// HashPin derives the stored form of a member PIN. The kiosk admin panel
// calls this when issuing or resetting PINs.
func HashPin(pin string) (string, error) {
	if !pinPattern.MatchString(pin) {
		return "", fmt.Errorf("PIN must be exactly 4 digits")
	}

	salt := make([]byte, viper.GetInt("argon2.salt_length"))
	if _, err := cryptorand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(pin), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return fmt.Sprintf("%s$%s", base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(hash)), nil
}

func verifyPin(pin, pinHash string) bool {
	parts := strings.Split(pinHash, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	hash, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computedHash := argon2.IDKey([]byte(pin), salt,
		uint32(viper.GetInt("argon2.time")),
		uint32(viper.GetInt("argon2.memory")),
		uint8(viper.GetInt("argon2.threads")),
		uint32(viper.GetInt("argon2.key_length")))
	return string(hash) == string(computedHash)
}

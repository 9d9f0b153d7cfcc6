package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
	"github.com/rogerio-castellano/ink-to-doc/internal/http/ban"
	"github.com/rogerio-castellano/ink-to-doc/internal/models"
	"github.com/rogerio-castellano/ink-to-doc/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// RegisterHandler godoc
// @Summary Register a new account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "username, email and password"
// @Success 200 {object} TokenResult
// @Failure 400 {object} MessageResult "Missing fields or duplicate email"
// @Failure 500 {object} MessageResult
// @Router /api/auth/register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateRegistration(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Early duplicate check for a friendly error; the unique constraint on
	// the users table is what actually closes the race.
	if _, err := userRepo.GetByEmail(req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		log.Printf("Registration lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user, err := userRepo.Create(models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("Registration failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	_ = writeJSON(w, http.StatusOK, TokenResult{Token: token})
}

// LoginHandler godoc
// @Summary Authenticate with email and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "email and password"
// @Success 200 {object} TokenResult
// @Failure 400 {object} MessageResult "Invalid credentials"
// @Failure 500 {object} MessageResult
// @Router /api/auth/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateLogin(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	// Unknown email and wrong password produce the same response to avoid
	// account enumeration.
	user, err := userRepo.GetByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			log.Printf("Login lookup failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Server error during login")
			return
		}
		ban.AddStrike(clientIP(r), r.URL.Path)
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		ban.AddStrike(clientIP(r), r.URL.Path)
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Token generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	ban.ClearStrikes(clientIP(r))
	_ = writeJSON(w, http.StatusOK, TokenResult{Token: token})
}

// CurrentUserHandler godoc
// @Summary Return the account the presented token belongs to
// @Tags auth
// @Security TokenHeader
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} MessageResult
// @Failure 404 {object} MessageResult "Account no longer exists"
// @Router /api/auth/me [get]
func CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	user, err := userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Current-user lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	_ = writeJSON(w, http.StatusOK, user)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/ink-to-doc/internal/repo"
)

// GetProfileHandler godoc
// @Summary Return the authenticated caller's profile
// @Tags user
// @Security TokenHeader
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} MessageResult
// @Failure 404 {object} MessageResult
// @Router /api/user/profile [get]
func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
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
		log.Printf("Profile lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	_ = writeJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler godoc
// @Summary Partially update the caller's username and/or email
// @Tags user
// @Security TokenHeader
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "fields to change; empty fields are kept"
// @Success 200 {object} models.User
// @Failure 400 {object} MessageResult "Email already in use"
// @Failure 401 {object} MessageResult
// @Failure 404 {object} MessageResult
// @Router /api/user/profile [put]
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	var req UpdateProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Profile lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" && req.Email != user.Email {
		// A changed email goes through the same uniqueness gate as
		// registration.
		if !emailPattern.MatchString(req.Email) {
			writeError(w, http.StatusBadRequest, "Please provide a valid email")
			return
		}
		if _, err := userRepo.GetByEmail(req.Email); err == nil {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		} else if !errors.Is(err, repo.ErrUserNotFound) {
			log.Printf("Profile email check failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
		user.Email = req.Email
	}

	updated, err := userRepo.Update(user)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "User already exists")
		case errors.Is(err, repo.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("Profile update failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	_ = writeJSON(w, http.StatusOK, updated)
}

// DeleteAccountHandler godoc
// @Summary Delete the caller's account
// @Tags user
// @Security TokenHeader
// @Produce json
// @Success 200 {object} MessageResult
// @Failure 401 {object} MessageResult
// @Failure 500 {object} MessageResult
// @Router /api/user/account [delete]
func DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Token is not valid")
		return
	}

	// Deleting an already-deleted account reports success; the outcome the
	// caller asked for holds either way.
	if err := userRepo.Delete(userID); err != nil && !errors.Is(err, repo.ErrUserNotFound) {
		log.Printf("Account deletion failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	_ = writeJSON(w, http.StatusOK, MessageResult{Message: "User deleted"})
}

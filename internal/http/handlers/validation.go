package handlers

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRegistration returns an error message, or "" when the request is
// acceptable.
func validateRegistration(req RegisterRequest) string {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		return "Please provide all required fields"
	}
	if !emailPattern.MatchString(req.Email) {
		return "Please provide a valid email"
	}
	return ""
}

func validateLogin(req LoginRequest) string {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return "Please provide both email and password"
	}
	return ""
}

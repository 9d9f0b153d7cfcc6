package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
	api "github.com/rogerio-castellano/ink-to-doc/internal/http"
	handler "github.com/rogerio-castellano/ink-to-doc/internal/http/handlers"
)

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	runWithVisitorCleanup(t, "Valid registration returns token", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		w := registerUser(r, handler.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.TokenResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("expected token in response")
		}

		userID, err := auth.VerifyToken(resp.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		user, err := userRepo.GetByEmail("a@x.com")
		if err != nil {
			t.Fatalf("registered user not persisted: %v", err)
		}
		if userID != user.ID {
			t.Errorf("token is bound to %q, want %q", userID, user.ID)
		}
	})

	runWithVisitorCleanup(t, "Missing fields are rejected", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		w := registerUser(r, handler.RegisterRequest{Username: "alice", Password: "secret1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Please provide all required fields" {
			t.Errorf("unexpected message %q", msg)
		}
	})

	runWithVisitorCleanup(t, "Malformed email is rejected", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		w := registerUser(r, handler.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Duplicate email returns 400 regardless of other fields", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		w := registerUser(r, handler.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK for first registration, got %d", w.Code)
		}

		w = registerUser(r, handler.RegisterRequest{Username: "someone-else", Email: "a@x.com", Password: "other-password"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "User already exists" {
			t.Errorf("unexpected message %q", msg)
		}
	})

	runWithVisitorCleanup(t, "Malformed JSON is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{username: "alice"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	runWithVisitorCleanup(t, "Valid credentials return token", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		user, _ := createUserAndToken(t, "alice", "a@x.com", "secret1")

		w := loginUser(r, handler.LoginRequest{Email: "a@x.com", Password: "secret1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.TokenResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		userID, err := auth.VerifyToken(resp.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if userID != user.ID {
			t.Errorf("token is bound to %q, want %q", userID, user.ID)
		}
	})

	runWithVisitorCleanup(t, "Wrong password and unknown email are indistinguishable", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		createUserAndToken(t, "alice", "a@x.com", "secret1")

		wrongPassword := loginUser(r, handler.LoginRequest{Email: "a@x.com", Password: "wrong"})
		unknownEmail := loginUser(r, handler.LoginRequest{Email: "nobody@x.com", Password: "secret1"})

		if wrongPassword.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for wrong password, got %d", wrongPassword.Code)
		}
		if unknownEmail.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown email, got %d", unknownEmail.Code)
		}
		if wrongPassword.Body.String() != unknownEmail.Body.String() {
			t.Errorf("responses differ: %q vs %q", wrongPassword.Body.String(), unknownEmail.Body.String())
		}
		if msg := decodeMessage(t, wrongPassword); msg != "Invalid credentials" {
			t.Errorf("unexpected message %q", msg)
		}
	})

	runWithVisitorCleanup(t, "Missing fields are rejected", func(t *testing.T) {
		w := loginUser(r, handler.LoginRequest{Email: "a@x.com"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}

func TestCurrentUserHandler(t *testing.T) {
	r := api.NewRouter()

	runWithVisitorCleanup(t, "Valid token returns the account without the password", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		user, token := createUserAndToken(t, "alice", "a@x.com", "secret1")

		w := authedRequest(r, http.MethodGet, "/api/auth/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["id"] != user.ID || resp["username"] != "alice" || resp["email"] != "a@x.com" {
			t.Errorf("unexpected account payload: %v", resp)
		}
		for _, key := range []string{"password", "password_hash", "passwordHash", "PasswordHash"} {
			if _, ok := resp[key]; ok {
				t.Errorf("response leaks %q", key)
			}
		}
	})

	runWithVisitorCleanup(t, "Missing token is rejected", func(t *testing.T) {
		w := authedRequest(r, http.MethodGet, "/api/auth/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Tampered token is rejected", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		_, token := createUserAndToken(t, "alice", "a@x.com", "secret1")

		w := authedRequest(r, http.MethodGet, "/api/auth/me", token+"x", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Expired token is rejected with the same message", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		user, _ := createUserAndToken(t, "alice", "a@x.com", "secret1")

		auth.Configure([]byte("test-secret"), -time.Minute)
		expired, err := auth.GenerateToken(user.ID)
		auth.Configure([]byte("test-secret"), time.Hour)
		if err != nil {
			t.Fatalf("error generating expired token: %v", err)
		}

		w := authedRequest(r, http.MethodGet, "/api/auth/me", expired, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Token is not valid" {
			t.Errorf("expired token response should not reveal expiry, got %q", msg)
		}
	})

	runWithVisitorCleanup(t, "Token for a deleted account returns 404", func(t *testing.T) {
		t.Cleanup(clearAllUsers)
		user, token := createUserAndToken(t, "alice", "a@x.com", "secret1")

		if err := userRepo.Delete(user.ID); err != nil {
			t.Fatalf("error deleting user: %v", err)
		}

		w := authedRequest(r, http.MethodGet, "/api/auth/me", token, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 Not Found, got %d", w.Code)
		}
	})
}

func TestAuthFlow(t *testing.T) {
	r := api.NewRouter()

	runWithVisitorCleanup(t, "Register, inspect profile, fail and succeed login", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		w := registerUser(r, handler.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK for registration, got %d", w.Code)
		}
		var first handler.TokenResult
		if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		profile := authedRequest(r, http.MethodGet, "/api/user/profile", first.Token, nil)
		if profile.Code != http.StatusOK {
			t.Fatalf("expected 200 OK for profile, got %d", profile.Code)
		}
		var resp map[string]any
		if err := json.NewDecoder(profile.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode profile: %v", err)
		}
		if resp["username"] != "alice" || resp["email"] != "a@x.com" {
			t.Errorf("unexpected profile payload: %v", resp)
		}

		if w := loginUser(r, handler.LoginRequest{Email: "a@x.com", Password: "wrong"}); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for wrong password, got %d", w.Code)
		}

		w = loginUser(r, handler.LoginRequest{Email: "a@x.com", Password: "secret1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK for login, got %d", w.Code)
		}
		var second handler.TokenResult
		if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		// Both sessions stay valid; there is no revocation.
		for _, token := range []string{first.Token, second.Token} {
			if _, err := auth.VerifyToken(token); err != nil {
				t.Errorf("token no longer verifies: %v", err)
			}
		}
	})
}

func TestRateLimiting(t *testing.T) {
	r := api.NewRouter()

	runWithVisitorCleanup(t, "Burst beyond the limit returns 429", func(t *testing.T) {
		t.Cleanup(clearAllUsers)

		var last *httptest.ResponseRecorder
		for i := 0; i < 5; i++ {
			last = loginUser(r, handler.LoginRequest{Email: "a@x.com", Password: "secret1"})
		}
		if last.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 Too Many Requests, got %d", last.Code)
		}
	})
}

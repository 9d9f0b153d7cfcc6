package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
	handler "github.com/rogerio-castellano/ink-to-doc/internal/http/handlers"
	rl "github.com/rogerio-castellano/ink-to-doc/internal/http/rate_limiter"
	"github.com/rogerio-castellano/ink-to-doc/internal/models"
	"github.com/rogerio-castellano/ink-to-doc/internal/redissvc"
	"github.com/rogerio-castellano/ink-to-doc/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var userRepo *repo.InMemoryUserRepository

func init() {
	auth.Configure([]byte("test-secret"), time.Hour)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)
	handler.SetTextCache(redissvc.NewInMemoryTextCache())
}

func clearAllUsers() {
	userRepo.Clear()
}

// runWithVisitorCleanup resets the per-IP rate limiter so every subtest
// starts with a full burst budget.
func runWithVisitorCleanup(t *testing.T, name string, testFunc func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		rl.CleanupAllVisitors()
		testFunc(t)
	})
}

// createUserAndToken seeds a user straight into the repository and issues a
// token for it, without spending the credential endpoints' rate budget.
func createUserAndToken(t *testing.T, username, email, password string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("error hashing password: %v", err)
	}

	user, err := userRepo.Create(models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("error seeding user: %v", err)
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	return user, token
}

func registerUser(r http.Handler, req handler.RegisterRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func loginUser(r http.Handler, req handler.LoginRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func authedRequest(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set(handler.TokenHeader, token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp handler.MessageResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp.Message
}

func multipartImage(imageContent []byte, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("image", filename)
	part.Write(imageContent)

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func uploadImage(r http.Handler, imageContent []byte) *httptest.ResponseRecorder {
	body, contentType := multipartImage(imageContent, fmt.Sprintf("notes-%d.png", len(imageContent)))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

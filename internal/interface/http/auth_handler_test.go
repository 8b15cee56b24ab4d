package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dailyforge/dailyforge-api/internal/application"
	"github.com/dailyforge/dailyforge-api/internal/domain/entity"
	"github.com/dailyforge/dailyforge-api/internal/domain/repository"
	"github.com/dailyforge/dailyforge-api/internal/interface/middleware"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
	"github.com/dailyforge/dailyforge-api/pkg/validation"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	next  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.next++
	u.ID = fmt.Sprintf("user-%d", r.next)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

type memTokenRepo struct {
	mu   sync.Mutex
	rows map[string]entity.PasswordResetToken
	next int
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{rows: make(map[string]entity.PasswordResetToken)}
}

func (r *memTokenRepo) Replace(_ context.Context, userID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, row := range r.rows {
		if row.UserID == userID {
			delete(r.rows, id)
		}
	}
	r.next++
	id := fmt.Sprintf("token-%d", r.next)
	r.rows[id] = entity.PasswordResetToken{ID: id, UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	return nil
}

func (r *memTokenRepo) ListActive(_ context.Context, now time.Time) ([]entity.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.PasswordResetToken, 0, len(r.rows))
	for _, row := range r.rows {
		if row.ExpiresAt.After(now) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memTokenRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()

	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAuthService(users, tokens, jwt, nil, testLogger(), time.Hour, "http://localhost/reset-password")
	h := NewAuthHandler(svc, testLogger())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/request-password-reset", h.RequestPasswordReset)
	api.POST("/auth/reset-password/:token", h.ResetPassword)
	authed := api.Group("/")
	authed.Use(middleware.Auth(users, jwt))
	authed.GET("/auth/me", h.Me)
	authed.PUT("/auth/change-password", h.ChangePassword)
	return r, users
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return e
}

func TestRegisterLoginMe_EndToEnd(t *testing.T) {
	t.Parallel()

	r, _ := newAuthTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "a@b.co",
		"password": "password123",
		"username": "alex",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "a@b.co",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var loginData struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &loginData); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if loginData.Token == "" {
		t.Fatal("login returned no token")
	}

	w = doJSON(t, r, http.MethodGet, "/api/auth/me", loginData.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var me struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &me); err != nil {
		t.Fatalf("decode me data: %v", err)
	}
	if me.Email != "a@b.co" {
		t.Fatalf("me returned wrong email: %q", me.Email)
	}
}

func TestRegister_Statuses(t *testing.T) {
	t.Parallel()

	r, _ := newAuthTestRouter(t)

	// Weak password on a fresh email is 400.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "a@b.co",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("weak password: expected 400, got %d", w.Code)
	}

	// First registration succeeds, second with the same email is 409.
	payload := gin.H{"email": "a@b.co", "password": "password123"}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload); w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", payload); w.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", w.Code)
	}

	// The conflict wins even when the password is also too short.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "a@b.co",
		"password": "short",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate with weak password: expected 409, got %d", w.Code)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	r, _ := newAuthTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "a@b.co", "password": "password123",
	})

	for _, body := range []gin.H{
		{"email": "a@b.co", "password": "wrongpassword"},
		{"email": "nobody@b.co", "password": "password123"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d for %v", w.Code, body)
		}
	}
}

func TestRequestPasswordReset_AlwaysGeneric200(t *testing.T) {
	t.Parallel()

	r, _ := newAuthTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "a@b.co", "password": "password123",
	})

	known := doJSON(t, r, http.MethodPost, "/api/auth/request-password-reset", "", gin.H{"email": "a@b.co"})
	unknown := doJSON(t, r, http.MethodPost, "/api/auth/request-password-reset", "", gin.H{"email": "nobody@b.co"})
	if known.Code != http.StatusOK || unknown.Code != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", known.Code, unknown.Code)
	}
	if decodeEnvelope(t, known).Message != decodeEnvelope(t, unknown).Message {
		t.Fatal("reset request replies must be indistinguishable")
	}
}

func TestResetPassword_BadToken400(t *testing.T) {
	t.Parallel()

	r, _ := newAuthTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/reset-password/bogus-token", "", gin.H{
		"new_password": "brandnewpass1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

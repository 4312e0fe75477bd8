package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/purushotham2628/fitness-diet-app/middlewares"
	"github.com/purushotham2628/fitness-diet-app/models"
	"github.com/purushotham2628/fitness-diet-app/services"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserProfile{}, &models.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sessions := services.NewSessionService(db, 24*time.Hour)
	ac := NewAuthController(services.NewAuthService(db), sessions)

	r := gin.New()
	r.POST("/api/register", ac.Register)
	r.POST("/api/login", ac.Login)
	r.POST("/api/logout", ac.Logout)
	r.GET("/api/user", middlewares.AuthRequired(sessions), ac.CurrentUser)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Message  string `json:"message"`
		UserID   uint   `json:"userId"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID == 0 || resp.Username != "alice" {
		t.Errorf("unexpected response: %+v", resp)
	}

	cookie := sessionCookie(t, w)

	// The fresh session authenticates /api/user.
	u := doJSON(r, http.MethodGet, "/api/user", "", cookie)
	if u.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/user, got %d", u.Code)
	}
	var userResp struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.Unmarshal(u.Body.Bytes(), &userResp); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if userResp.Username != "alice" || userResp.Email != "alice@example.com" {
		t.Errorf("unexpected user payload: %+v", userResp)
	}
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/register",
		`{"username":"bob","email":"bob@example.com","password":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "at least 6 characters") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	r := newAuthRouter(t)

	doJSON(r, http.MethodPost, "/api/register",
		`{"username":"carol","email":"carol@example.com","password":"secret1"}`)
	w := doJSON(r, http.MethodPost, "/api/register",
		`{"username":"carol","email":"other@example.com","password":"secret1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestLoginEndpoint_WrongCredentialsAreGeneric(t *testing.T) {
	r := newAuthRouter(t)

	doJSON(r, http.MethodPost, "/api/register",
		`{"username":"dave","email":"dave@example.com","password":"secret1"}`)

	unknown := doJSON(r, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"secret1"}`)
	wrongPw := doJSON(r, http.MethodPost, "/api/login",
		`{"email":"dave@example.com","password":"nope-nope"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Errorf("credential errors leak which field was wrong: %s vs %s",
			unknown.Body.String(), wrongPw.Body.String())
	}
}

func TestLogoutEndpoint_InvalidatesSession(t *testing.T) {
	r := newAuthRouter(t)

	reg := doJSON(r, http.MethodPost, "/api/register",
		`{"username":"erin","email":"erin@example.com","password":"secret1"}`)
	cookie := sessionCookie(t, reg)

	out := doJSON(r, http.MethodPost, "/api/logout", "", cookie)
	if out.Code != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d", out.Code)
	}

	u := doJSON(r, http.MethodGet, "/api/user", "", cookie)
	if u.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", u.Code)
	}

	// Logging out again is harmless.
	again := doJSON(r, http.MethodPost, "/api/logout", "", cookie)
	if again.Code != http.StatusOK {
		t.Errorf("expected idempotent logout, got %d", again.Code)
	}
}

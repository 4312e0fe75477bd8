package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/purushotham2628/fitness-diet-app/models"
	"github.com/purushotham2628/fitness-diet-app/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.SessionService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sessions := services.NewSessionService(db, 24*time.Hour)

	r := gin.New()
	r.GET("/protected", AuthRequired(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetUint("userID")})
	})
	return r, sessions, db
}

func TestAuthRequired_NoCookie(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", w.Code)
	}
}

func TestAuthRequired_UnknownToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-session"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown token, got %d", w.Code)
	}
}

func TestAuthRequired_ValidSession(t *testing.T) {
	r, sessions, db := newTestRouter(t)

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := sessions.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid session, got %d (%s)", w.Code, w.Body.String())
	}
}

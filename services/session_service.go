package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/purushotham2628/fitness-diet-app/models"
)

// SessionService manages the opaque-token sessions behind the auth cookie.
// Tokens have a fixed TTL from issuance; nothing is renewed on use.
type SessionService struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{db: db, ttl: ttl}
}

func (s *SessionService) TTL() time.Duration { return s.ttl }

// Create issues a new session for the user and returns the cookie token.
func (s *SessionService) Create(ctx context.Context, userID uint) (string, error) {
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.db.WithContext(ctx).Create(&sess).Error; err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Resolve returns the user id bound to token. Expired sessions are removed on
// touch and reported as ErrNoSession.
func (s *SessionService) Resolve(ctx context.Context, token string) (uint, error) {
	if token == "" {
		return 0, ErrNoSession
	}
	var sess models.Session
	err := s.db.WithContext(ctx).First(&sess, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoSession
		}
		return 0, err
	}
	if time.Now().After(sess.ExpiresAt) {
		s.db.WithContext(ctx).Delete(&sess)
		return 0, ErrNoSession
	}
	return sess.UserID, nil
}

// Destroy removes the session row. Missing tokens are not an error, so logout
// stays idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&models.Session{}, "token = ?", token).Error
}

// Sweep deletes all expired sessions; run periodically.
func (s *SessionService) Sweep(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Session{}, "expires_at < ?", time.Now())
	return res.RowsAffected, res.Error
}

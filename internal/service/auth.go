package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/ufo_delivery/internal/hash"
	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	"github.com/Skotchmaster/ufo_delivery/internal/repo"
	"github.com/Skotchmaster/ufo_delivery/internal/tokens"
)

type AuthService struct {
	Repo           *repo.GormRepo
	JWTSecret      []byte
	AccessTokenTTL time.Duration
}

// Login authenticates the phone/password pair and issues an access token.
// Unknown phone and wrong password produce the same error so the response
// does not leak which half was wrong.
func (s *AuthService) Login(ctx context.Context, phone, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login failed", "status", 401, "reason", "unknown phone")
			return "", ErrInvalidCredentials
		}
		l.Error("login failed", "status", 500, "error", err)
		return "", err
	}

	if !hash.CheckPassword(user.Password, password) {
		l.Warn("login failed", "status", 401, "reason", "wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := tokens.Issue(user.Phone, s.JWTSecret, s.AccessTokenTTL)
	if err != nil {
		l.Error("login failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("login success")
	return token, nil
}

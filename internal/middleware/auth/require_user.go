package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ufo_delivery/internal/models"
	"github.com/Skotchmaster/ufo_delivery/internal/service"
	"github.com/Skotchmaster/ufo_delivery/internal/tokens"
)

const userContextKey = "current_user"

type AuthMiddleware struct {
	JWTSecret []byte
	Users     *service.UserService
}

func NewAuthMiddleware(secret []byte, users *service.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		JWTSecret: secret,
		Users:     users,
	}
}

type ValidatorFunc func(user *models.User) error

// RequireUser resolves the caller from the bearer token and stores the user
// in the echo context.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireUserWithValidator(next, nil)
}

// RequireSuperuser layers the superuser check on top of identification.
func (m *AuthMiddleware) RequireSuperuser(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireUserWithValidator(next, func(user *models.User) error {
		if !user.IsSuperuser {
			return echo.NewHTTPError(http.StatusForbidden, "insufficient rights for this action")
		}
		return nil
	})
}

func (m *AuthMiddleware) requireUserWithValidator(next echo.HandlerFunc, validator ValidatorFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return unauthenticated(c)
		}

		claims, err := tokens.Parse(token, m.JWTSecret)
		if err != nil || claims.Subject == "" {
			return unauthenticated(c)
		}

		user, err := m.Users.GetByPhone(c.Request().Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return unauthenticated(c)
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		if validator != nil {
			if err := validator(user); err != nil {
				return err
			}
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}

func unauthenticated(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "failed to validate credentials")
}

// CurrentUser returns the user attached by RequireUser.
func CurrentUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(userContextKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Eursukkul/hotel-booking-service/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const userIDKey = "userId"

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

// Authenticate accepts "Authorization: Bearer <jwt>" signed with secret (HMAC)
// for which a session row still exists, and stores the user id on the context.
func Authenticate(secret string, sessions repository.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized()
			}
			token := strings.TrimPrefix(header, "Bearer ")

			claims, err := parseToken(token, secret)
			if err != nil {
				return unauthorized()
			}

			session, err := sessions.FindByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return unauthorized()
				}
				return err
			}
			if session.UserID != claims.UserID {
				log.Printf("[Auth] session %d belongs to user %d, token claims user %d", session.ID, session.UserID, claims.UserID)
				return unauthorized()
			}

			c.Set(userIDKey, claims.UserID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user. It is zero outside Authenticate.
func UserID(c echo.Context) uint {
	id, _ := c.Get(userIDKey).(uint)
	return id
}

func parseToken(token, secret string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

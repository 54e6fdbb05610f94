package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jaehyuncho/fitdiary/internal/models"
)

const contextProfileKey = "session_profile"

// SessionRequired binds the request to a device profile. A first visit
// without a usable cookie gets a fresh profile minted on the spot, so
// every request downstream has an identity without any login flow.
func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	handler.ensureDependencies()

	profile, err := handler.profileFromCookie(c)
	if err != nil {
		profile, err = handler.profileService.CreateDefault(handler.now())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "session init failed")
		}
		if err := handler.setSessionCookie(c, profile.ID); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "session init failed")
		}
	}

	c.Locals(contextProfileKey, profile)
	return c.Next()
}

func (handler *Handler) profileFromCookie(c *fiber.Ctx) (models.Profile, error) {
	rawToken := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawToken == "" {
		return models.Profile{}, errors.New("missing session cookie")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return models.Profile{}, errors.New("invalid session token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return models.Profile{}, errors.New("session token expired")
	}

	return handler.profileService.FindByID(claims.ProfileID)
}

func (handler *Handler) setSessionCookie(c *fiber.Ctx, profileID string) error {
	now := time.Now()
	claims := sessionClaims{
		ProfileID: profileID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(sessionTokenTTL),
	})
	return nil
}

func currentProfile(c *fiber.Ctx) models.Profile {
	profile, _ := c.Locals(contextProfileKey).(models.Profile)
	return profile
}

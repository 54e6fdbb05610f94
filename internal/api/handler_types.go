package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jaehyuncho/fitdiary/internal/db"
	"github.com/jaehyuncho/fitdiary/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories     *db.Repositories
	profileService   *services.ProfileService
	workoutService   *services.WorkoutService
	teamService      *services.TeamService
	voteService      *services.VoteService
	communityService *services.CommunityService
	statsService     *services.StatsService
}

// NewHandler wires the HTTP layer. The device session cookie is the
// only identity mechanism; there are no accounts to log into.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}

const (
	sessionCookieName = "fitdiary_session"
	sessionTokenTTL   = 365 * 24 * time.Hour
)

type sessionClaims struct {
	ProfileID string `json:"pid"`
	jwt.RegisteredClaims
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/moveday/internal/content"
	"github.com/terraincognita07/moveday/internal/db"
	"github.com/terraincognita07/moveday/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	content      *content.Store

	repositories     *db.Repositories
	authService      *services.AuthService
	checklistService *services.ChecklistService
	moveDateService  *services.MoveDateService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, contentStore *content.Store) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.Local
	}
	if contentStore == nil {
		return nil, errors.New("content store is required")
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:               database,
		secretKey:        []byte(secret),
		location:         location,
		cookieSecure:     cookieSecure,
		content:          contentStore,
		repositories:     repositories,
		authService:      services.NewAuthService(repositories.Users),
		checklistService: services.NewChecklistService(repositories.ChecklistItems),
		moveDateService:  services.NewMoveDateService(repositories.MoveSettings),
	}, nil
}

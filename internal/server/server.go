package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/models"
	"github.com/claude/reppulse/internal/random"
	"github.com/claude/reppulse/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store is the persistence surface the handlers need. *storage.DB
// implements it; tests substitute an in-memory fake.
type Store interface {
	CreateProfile(ctx context.Context, p models.Profile) (int, error)
	GetProfile(ctx context.Context, userID int) (*models.Profile, error)
	UpdateProfileGoals(ctx context.Context, userID int, primary string, secondaries []string, weights goals.Weights) error
	UpdateProfileEquipment(ctx context.Context, userID int, equip []equipment.ID) error
	UpdateSkillScore(ctx context.Context, userID, score int) error
	DeleteProfile(ctx context.Context, userID int) error

	InsertSession(ctx context.Context, s models.WorkoutSession) error
	GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error)
	QuerySessions(ctx context.Context, userID, limit int) ([]models.WorkoutSession, error)
	CompleteSession(ctx context.Context, id uuid.UUID, results []storage.RoundResult, rating *int) error

	ListProgressions(ctx context.Context, userID int) ([]models.ExerciseProgression, error)
	UpsertProgressions(ctx context.Context, userID int, updates []models.ExerciseProgression) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  Store
	cat    *catalog.Catalog
	rng    random.Source
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, cat *catalog.Catalog, rng random.Source, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		cat:    cat,
		rng:    rng,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Reference data (no auth)
	s.router.Get("/api/v1/catalog", s.handleCatalog)
	s.router.Get("/api/v1/goals", s.handleGoals)
	s.router.Get("/api/v1/equipment", s.handleEquipmentOptions)

	// Profile and session endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Post("/api/v1/profiles", s.handleCreateProfile)
		r.Get("/api/v1/profiles/{id}", s.handleGetProfile)
		r.Put("/api/v1/profiles/{id}/goals", s.handleUpdateGoals)
		r.Put("/api/v1/profiles/{id}/equipment", s.handleUpdateEquipment)
		r.Delete("/api/v1/profiles/{id}", s.handleDeleteProfile)

		r.Post("/api/v1/profiles/{id}/workouts", s.handleGenerateWorkout)
		r.Get("/api/v1/profiles/{id}/sessions", s.handleQuerySessions)
		r.Get("/api/v1/profiles/{id}/insights", s.handleInsights)
		r.Get("/api/v1/profiles/{id}/progressions", s.handleProgressions)

		r.Post("/api/v1/sessions/{id}/complete", s.handleCompleteSession)
	})
}

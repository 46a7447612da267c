package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/generator"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/insights"
	"github.com/claude/reppulse/internal/models"
	"github.com/claude/reppulse/internal/progression"
	"github.com/claude/reppulse/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type generateRequest struct {
	FocusLabel string `json:"focus_label,omitempty"`
}

// handleGenerateWorkout runs the full generation cycle: insights over
// the session history, goal-weighted framework sampling, the
// personalization override, then round assembly. The resulting session
// is persisted pending completion.
func (s *Server) handleGenerateWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	var req generateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}
	}

	profile, err := s.store.GetProfile(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	history, err := s.store.QuerySessions(r.Context(), id, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var ins *insights.Insights
	if len(history) > 0 {
		computed := insights.Compute(history, insights.DefaultWindowSize)
		ins = &computed
	}

	base := goals.PickFrameworkWeighted(profile.GoalWeights, s.rng)
	framework := insights.SelectFramework(base, ins)

	focus := req.FocusLabel
	if focus == "" {
		if cfg, ok := goals.Lookup(profile.PrimaryGoal); ok {
			focus = cfg.Label
		} else {
			focus = profile.PrimaryGoal
		}
	}

	workout, err := generator.Generate(s.cat, profile.SkillScore, profile.Equipment, focus, framework, s.rng)
	if err != nil {
		var integrity *catalog.IntegrityError
		if errors.As(err, &integrity) {
			s.log.Error("catalog integrity violation", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	session := models.WorkoutSession{
		ID:              uuid.New(),
		UserID:          id,
		CreatedAt:       time.Now().UTC(),
		Framework:       workout.Framework,
		DifficultyTag:   workout.DifficultyTag,
		DurationMinutes: workout.DurationMinutes,
		FocusLabel:      workout.FocusLabel,
		Rounds:          workout.Rounds,
	}
	for i := range session.Rounds {
		session.Rounds[i].SessionID = session.ID
	}

	if err := s.store.InsertSession(r.Context(), session); err != nil {
		s.log.Error("insert session", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

type completeSessionRequest struct {
	Rounds []storage.RoundResult `json:"rounds"`
	Rating *int                  `json:"rating,omitempty"`
}

type completeSessionResponse struct {
	SessionID   uuid.UUID                    `json:"session_id"`
	Summary     insights.SessionSummary      `json:"summary"`
	Progression []models.ExerciseProgression `json:"progression"`
	SkillScore  int                          `json:"skill_score"`
}

// handleCompleteSession records round outcomes, marks the session
// completed, recomputes progression rows for the exercises touched, and
// applies the effort rating to the skill score.
func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session ID")
		return
	}
	var req completeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		writeError(w, http.StatusBadRequest, "rating must be 1-5")
		return
	}

	session, err := s.store.GetSession(r.Context(), sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session.Completed {
		writeError(w, http.StatusConflict, "session already completed")
		return
	}

	if err := s.store.CompleteSession(r.Context(), sessionID, req.Rounds, req.Rating); err != nil {
		s.log.Error("complete session", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	rounds := applyResults(session.Rounds, req.Rounds)

	existing, err := s.store.ListProgressions(r.Context(), session.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	updates := progression.BuildUpdates(rounds, existing, time.Now().UTC())
	for i := range updates {
		updates[i].UserID = session.UserID
	}
	if err := s.store.UpsertProgressions(r.Context(), session.UserID, updates); err != nil {
		s.log.Error("upsert progressions", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	profile, err := s.store.GetProfile(r.Context(), session.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	score := profile.SkillScore
	if req.Rating != nil {
		score = generator.UpdateSkillScore(score, *req.Rating)
		if err := s.store.UpdateSkillScore(r.Context(), session.UserID, score); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, completeSessionResponse{
		SessionID:   sessionID,
		Summary:     insights.Summarize(rounds, req.Rating),
		Progression: updates,
		SkillScore:  score,
	})
}

// applyResults merges logged outcomes into the generated rounds by
// minute index.
func applyResults(rounds []models.WorkoutRound, results []storage.RoundResult) []models.WorkoutRound {
	byMinute := make(map[int]storage.RoundResult, len(results))
	for _, res := range results {
		byMinute[res.MinuteIndex] = res
	}
	merged := make([]models.WorkoutRound, len(rounds))
	for i, round := range rounds {
		if res, ok := byMinute[round.MinuteIndex]; ok {
			round.ActualReps = res.ActualReps
			round.ActualSeconds = res.ActualSeconds
			round.ActualLoad = res.ActualLoad
			round.Skipped = res.Skipped
		}
		merged[i] = round
	}
	return merged
}

func (s *Server) handleQuerySessions(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
	}
	sessions, err := s.store.QuerySessions(r.Context(), id, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	sessions, err := s.store.QuerySessions(r.Context(), id, 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, insights.Compute(sessions, insights.DefaultWindowSize))
}

func (s *Server) handleProgressions(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	rows, err := s.store.ListProgressions(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

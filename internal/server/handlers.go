package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/models"
	"github.com/claude/reppulse/internal/storage"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func userIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Exercises())
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, goals.Configs)
}

func (s *Server) handleEquipmentOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, equipment.Options)
}

type createProfileRequest struct {
	FitnessLevel   string   `json:"fitness_level"`
	Equipment      []string `json:"equipment"`
	SkillScore     *int     `json:"skill_score,omitempty"`
	PrimaryGoal    string   `json:"primary_goal"`
	SecondaryGoals []string `json:"secondary_goals"`
	LegacyFocus    string   `json:"goal_focus,omitempty"`
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	primary := req.PrimaryGoal
	if primary == "" && req.LegacyFocus != "" {
		primary = goals.MigrateLegacyFocus(req.LegacyFocus)
	}
	if primary == "" {
		writeError(w, http.StatusBadRequest, "primary_goal is required")
		return
	}
	if len(req.SecondaryGoals) > 2 {
		writeError(w, http.StatusBadRequest, "at most 2 secondary goals")
		return
	}

	equip, _ := equipment.Resolve(req.Equipment)
	score := 50
	if req.SkillScore != nil {
		score = min(100, max(0, *req.SkillScore))
	}

	p := models.Profile{
		FitnessLevel:   req.FitnessLevel,
		Equipment:      equip,
		SkillScore:     score,
		PrimaryGoal:    primary,
		SecondaryGoals: req.SecondaryGoals,
		GoalWeights:    goals.BuildWeights(primary, req.SecondaryGoals),
	}

	id, err := s.store.CreateProfile(r.Context(), p)
	if err != nil {
		s.log.Error("create profile", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := s.store.GetProfile(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	p, err := s.store.GetProfile(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type updateGoalsRequest struct {
	PrimaryGoal    string   `json:"primary_goal"`
	SecondaryGoals []string `json:"secondary_goals"`
}

func (s *Server) handleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	var req updateGoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.PrimaryGoal == "" {
		writeError(w, http.StatusBadRequest, "primary_goal is required")
		return
	}
	if len(req.SecondaryGoals) > 2 {
		writeError(w, http.StatusBadRequest, "at most 2 secondary goals")
		return
	}

	weights := goals.BuildWeights(req.PrimaryGoal, req.SecondaryGoals)
	err = s.store.UpdateProfileGoals(r.Context(), id, req.PrimaryGoal, req.SecondaryGoals, weights)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"primary_goal": req.PrimaryGoal, "goal_weights": weights})
}

type updateEquipmentRequest struct {
	Equipment []string `json:"equipment"`
}

func (s *Server) handleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	var req updateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	equip, richness := equipment.Resolve(req.Equipment)
	err = s.store.UpdateProfileEquipment(r.Context(), id, equip)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"equipment": equip, "richness": richness})
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile ID")
		return
	}
	err = s.store.DeleteProfile(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

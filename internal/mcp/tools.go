package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/generator"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/insights"
	"github.com/claude/reppulse/internal/models"
	"github.com/claude/reppulse/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolGetInsights = mcp.NewTool("get_insights",
	mcp.WithDescription("Get personalization insights derived from a user's session history: fatigue trend, muscle preferences, underperforming exercises, time-of-day adherence, and completion streak."),
	mcp.WithNumber("user_id",
		mcp.Required(),
		mcp.Description("Profile ID to compute insights for"),
	),
)

func (h *handlers) getInsights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireInt("user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sessions, err := h.db.QuerySessions(ctx, userID, 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("querying sessions: %v", err)), nil
	}
	if len(sessions) == 0 {
		return mcp.NewToolResultText("No completed sessions yet; insights are unavailable."), nil
	}
	return mcp.NewToolResultJSON(insights.Compute(sessions, insights.DefaultWindowSize))
}

var toolGetCatalog = mcp.NewTool("get_catalog",
	mcp.WithDescription("Get the exercise catalog, optionally filtered to a difficulty tier."),
	mcp.WithString("difficulty",
		mcp.Description("Filter to one tier"),
		mcp.Enum("beginner", "intermediate", "advanced"),
	),
)

func (h *handlers) getCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tier := req.GetString("difficulty", "")
	exercises := h.cat.Exercises()
	if tier != "" {
		filtered := make([]catalog.Exercise, 0, len(exercises))
		for _, ex := range exercises {
			if string(ex.Difficulty) == tier {
				filtered = append(filtered, ex)
			}
		}
		exercises = filtered
	}
	return mcp.NewToolResultJSON(exercises)
}

var toolGetProgressions = mcp.NewTool("get_progressions",
	mcp.WithDescription("Get per-exercise progression state for a user: next rep/load targets, overperformance streak, and weekly increment count."),
	mcp.WithNumber("user_id",
		mcp.Required(),
		mcp.Description("Profile ID to list progressions for"),
	),
)

func (h *handlers) getProgressions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireInt("user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rows, err := h.db.ListProgressions(ctx, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing progressions: %v", err)), nil
	}
	return mcp.NewToolResultJSON(rows)
}

var toolGetRecentSessions = mcp.NewTool("get_recent_sessions",
	mcp.WithDescription("Get a user's most recent workout sessions, newest first, including per-round targets and logged outcomes."),
	mcp.WithNumber("user_id",
		mcp.Required(),
		mcp.Description("Profile ID to query sessions for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of sessions to return (default 10)"),
	),
)

func (h *handlers) getRecentSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireInt("user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", 10)
	sessions, err := h.db.QuerySessions(ctx, userID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("querying sessions: %v", err)), nil
	}
	return mcp.NewToolResultJSON(sessions)
}

var toolGenerateWorkout = mcp.NewTool("generate_workout",
	mcp.WithDescription("Generate and persist a new minute-by-minute interval workout for a user. Framework selection blends the user's goal weights with personalization overrides from their recent history."),
	mcp.WithNumber("user_id",
		mcp.Required(),
		mcp.Description("Profile ID to generate for"),
	),
	mcp.WithString("focus_label",
		mcp.Description("Optional focus label to stamp on the session; defaults to the primary goal's label"),
	),
)

func (h *handlers) generateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireInt("user_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile, err := h.db.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return mcp.NewToolResultError(fmt.Sprintf("profile %d not found", userID)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading profile: %v", err)), nil
	}

	history, err := h.db.QuerySessions(ctx, userID, 0)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("querying sessions: %v", err)), nil
	}
	var ins *insights.Insights
	if len(history) > 0 {
		computed := insights.Compute(history, insights.DefaultWindowSize)
		ins = &computed
	}

	base := goals.PickFrameworkWeighted(profile.GoalWeights, h.rng)
	framework := insights.SelectFramework(base, ins)

	focus := req.GetString("focus_label", "")
	if focus == "" {
		if cfg, ok := goals.Lookup(profile.PrimaryGoal); ok {
			focus = cfg.Label
		} else {
			focus = profile.PrimaryGoal
		}
	}

	workout, err := generator.Generate(h.cat, profile.SkillScore, profile.Equipment, focus, framework, h.rng)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generating workout: %v", err)), nil
	}

	session := models.WorkoutSession{
		ID:              uuid.New(),
		UserID:          userID,
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
	if err := h.db.InsertSession(ctx, session); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("saving session: %v", err)), nil
	}

	h.log.Info("generated workout via MCP", "user_id", userID, "framework", session.Framework, "minutes", session.DurationMinutes)
	return mcp.NewToolResultJSON(session)
}

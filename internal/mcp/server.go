// Package mcp exposes the personalization engine to LLM clients over
// the Model Context Protocol: session history, derived insights,
// progression state, and on-demand workout generation.
package mcp

import (
	"log/slog"

	"github.com/claude/reppulse/internal/catalog"
	"github.com/claude/reppulse/internal/random"
	"github.com/claude/reppulse/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(db *storage.DB, cat *catalog.Catalog, rng random.Source, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("RepPulse", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("RepPulse adaptive workout server. Query session history, personalization insights, and per-exercise progression, or generate a new interval workout. All data is scoped to the authenticated user."),
	)

	h := &handlers{db: db, cat: cat, rng: rng, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetCatalog, Handler: h.getCatalog},
		server.ServerTool{Tool: toolGetInsights, Handler: h.getInsights},
		server.ServerTool{Tool: toolGetProgressions, Handler: h.getProgressions},
		server.ServerTool{Tool: toolGetRecentSessions, Handler: h.getRecentSessions},
		server.ServerTool{Tool: toolGenerateWorkout, Handler: h.generateWorkout},
	)

	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resGoalCatalog, Handler: h.goalCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	db  *storage.DB
	cat *catalog.Catalog
	rng random.Source
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"reppulse://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with muscle group, difficulty tier, required equipment, and per-tier targets"),
	mcp.WithMIMEType("application/json"),
)

var resGoalCatalog = mcp.NewResource(
	"reppulse://goal_catalog",
	"Goal Catalog",
	mcp.WithResourceDescription("Training goal configurations with framework bias and exercise selection preferences"),
	mcp.WithMIMEType("application/json"),
)

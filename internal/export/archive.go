// Package export pulls completed sessions from a RepPulse server and
// archives them into a local SQLite file, so workout history survives
// server resets and can be queried offline.
package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/reppulse/internal/models"
	_ "modernc.org/sqlite"
)

// Archive is a local SQLite copy of workout sessions.
type Archive struct {
	db *sql.DB
}

// OpenArchive opens (or creates) the SQLite archive at dir/archive.db.
func OpenArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "archive.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id               TEXT PRIMARY KEY,
			user_id          INTEGER NOT NULL,
			created_at       TIMESTAMP NOT NULL,
			framework        TEXT NOT NULL,
			difficulty       TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			focus_label      TEXT NOT NULL,
			rating           INTEGER,
			completed        INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rounds (
			session_id     TEXT NOT NULL REFERENCES sessions(id),
			minute_index   INTEGER NOT NULL,
			exercise_name  TEXT NOT NULL,
			muscle_group   TEXT NOT NULL,
			difficulty     TEXT NOT NULL,
			target_reps    INTEGER NOT NULL,
			actual_reps    INTEGER,
			actual_seconds INTEGER,
			skipped        INTEGER NOT NULL,
			is_hold        INTEGER NOT NULL,
			target_load    REAL,
			actual_load    REAL,
			PRIMARY KEY (session_id, minute_index)
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating archive schema: %w", err)
		}
	}

	return &Archive{db: db}, nil
}

// HasSession reports whether a session is already archived.
func (a *Archive) HasSession(id string) (bool, error) {
	var count int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SaveSession stores one session and its rounds. Re-saving an existing
// session replaces it, so repeated exports are idempotent.
func (a *Archive) SaveSession(s models.WorkoutSession) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO sessions
			(id, user_id, created_at, framework, difficulty, duration_minutes, focus_label, rating, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.UserID, s.CreatedAt, string(s.Framework), s.DifficultyTag,
		s.DurationMinutes, s.FocusLabel, s.PerceivedExertion, s.Completed,
	)
	if err != nil {
		return fmt.Errorf("inserting session %s: %w", s.ID, err)
	}

	if _, err := tx.Exec(`DELETE FROM rounds WHERE session_id = ?`, s.ID.String()); err != nil {
		return fmt.Errorf("clearing rounds for %s: %w", s.ID, err)
	}
	for _, r := range s.Rounds {
		_, err = tx.Exec(
			`INSERT INTO rounds
				(session_id, minute_index, exercise_name, muscle_group, difficulty,
				 target_reps, actual_reps, actual_seconds, skipped, is_hold, target_load, actual_load)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID.String(), r.MinuteIndex, r.ExerciseName, r.MuscleGroup, r.Difficulty,
			r.TargetReps, r.ActualReps, r.ActualSeconds, r.Skipped, r.IsHold, r.TargetLoad, r.ActualLoad,
		)
		if err != nil {
			return fmt.Errorf("inserting round %d of %s: %w", r.MinuteIndex, s.ID, err)
		}
	}

	return tx.Commit()
}

// SessionCount returns the number of archived sessions.
func (a *Archive) SessionCount() (int, error) {
	var count int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

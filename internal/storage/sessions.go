package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/reppulse/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertSession inserts a session and its rounds in one transaction.
func (db *DB) InsertSession(ctx context.Context, s models.WorkoutSession) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_sessions (id, user_id, created_at, framework, difficulty_tag, duration_minutes, focus_label, perceived_exertion, completed)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.UserID, s.CreatedAt, s.Framework, s.DifficultyTag,
		s.DurationMinutes, s.FocusLabel, s.PerceivedExertion, s.Completed)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	if len(s.Rounds) > 0 {
		query := `INSERT INTO workout_rounds (session_id, minute_index, exercise_name, muscle_group, difficulty, target_reps, actual_reps, actual_seconds, skipped, is_hold, target_load, actual_load) VALUES `
		args := make([]any, 0, len(s.Rounds)*12)
		valueStrings := make([]string, 0, len(s.Rounds))
		for i, r := range s.Rounds {
			base := i * 12
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6,
				base+7, base+8, base+9, base+10, base+11, base+12,
			))
			args = append(args, s.ID, r.MinuteIndex, r.ExerciseName, r.MuscleGroup, r.Difficulty,
				r.TargetReps, r.ActualReps, r.ActualSeconds, r.Skipped, r.IsHold, r.TargetLoad, r.ActualLoad)
		}
		query += strings.Join(valueStrings, ",")
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting rounds: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// GetSession retrieves a session with its rounds ordered by minute.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID) (*models.WorkoutSession, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, created_at, framework, difficulty_tag, duration_minutes, focus_label, perceived_exertion, completed
		 FROM workout_sessions WHERE id = $1`, id)

	var s models.WorkoutSession
	err := row.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.Framework, &s.DifficultyTag,
		&s.DurationMinutes, &s.FocusLabel, &s.PerceivedExertion, &s.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	rounds, err := db.queryRounds(ctx, `WHERE session_id = $1`, id)
	if err != nil {
		return nil, err
	}
	s.Rounds = rounds
	return &s, nil
}

// QuerySessions returns a user's sessions newest first, rounds included.
// A limit of 0 means no cap.
func (db *DB) QuerySessions(ctx context.Context, userID, limit int) ([]models.WorkoutSession, error) {
	query := `SELECT id, user_id, created_at, framework, difficulty_tag, duration_minutes, focus_label, perceived_exertion, completed
		 FROM workout_sessions WHERE user_id = $1 ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var s models.WorkoutSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.Framework, &s.DifficultyTag,
			&s.DurationMinutes, &s.FocusLabel, &s.PerceivedExertion, &s.Completed); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return sessions, nil
	}

	rounds, err := db.queryRounds(ctx, `WHERE session_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	bySession := make(map[uuid.UUID][]models.WorkoutRound, len(sessions))
	for _, r := range rounds {
		bySession[r.SessionID] = append(bySession[r.SessionID], r)
	}
	for i := range sessions {
		sessions[i].Rounds = bySession[sessions[i].ID]
	}
	return sessions, nil
}

func (db *DB) queryRounds(ctx context.Context, where string, args ...any) ([]models.WorkoutRound, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT session_id, minute_index, exercise_name, muscle_group, difficulty, target_reps, actual_reps, actual_seconds, skipped, is_hold, target_load, actual_load
		 FROM workout_rounds `+where+` ORDER BY minute_index ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying rounds: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutRound
	for rows.Next() {
		var r models.WorkoutRound
		if err := rows.Scan(&r.SessionID, &r.MinuteIndex, &r.ExerciseName, &r.MuscleGroup, &r.Difficulty,
			&r.TargetReps, &r.ActualReps, &r.ActualSeconds, &r.Skipped, &r.IsHold, &r.TargetLoad, &r.ActualLoad); err != nil {
			return nil, fmt.Errorf("scanning round: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// RoundResult carries the logged outcome for one round of a session.
type RoundResult struct {
	MinuteIndex   int      `json:"minute_index"`
	ActualReps    *int     `json:"actual_reps,omitempty"`
	ActualSeconds *int     `json:"actual_seconds,omitempty"`
	ActualLoad    *float64 `json:"actual_load,omitempty"`
	Skipped       bool     `json:"skipped"`
}

// CompleteSession records round outcomes and marks the session
// completed with its effort rating, in one transaction. The generated
// session fields are never modified.
func (db *DB) CompleteSession(ctx context.Context, id uuid.UUID, results []RoundResult, rating *int) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, res := range results {
		_, err := tx.Exec(ctx,
			`UPDATE workout_rounds
			 SET actual_reps = $3, actual_seconds = $4, actual_load = $5, skipped = $6
			 WHERE session_id = $1 AND minute_index = $2`,
			id, res.MinuteIndex, res.ActualReps, res.ActualSeconds, res.ActualLoad, res.Skipped)
		if err != nil {
			return fmt.Errorf("updating round %d: %w", res.MinuteIndex, err)
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE workout_sessions SET completed = TRUE, perceived_exertion = $2 WHERE id = $1`,
		id, rating)
	if err != nil {
		return fmt.Errorf("completing session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

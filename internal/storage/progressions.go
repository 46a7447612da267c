package storage

import (
	"context"
	"fmt"

	"github.com/claude/reppulse/internal/models"
)

// ListProgressions returns all progression rows for a user.
func (db *DB) ListProgressions(ctx context.Context, userID int) ([]models.ExerciseProgression, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT user_id, exercise_name, next_target_reps, next_target_load, overperformance_streak, weekly_increments, week_of_year, last_session_at
		 FROM exercise_progressions WHERE user_id = $1 ORDER BY exercise_name ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying progressions: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseProgression
	for rows.Next() {
		var p models.ExerciseProgression
		if err := rows.Scan(&p.UserID, &p.ExerciseName, &p.NextTargetReps, &p.NextTargetLoad,
			&p.OverperformanceStreak, &p.WeeklyIncrements, &p.WeekOfYear, &p.LastSessionAt); err != nil {
			return nil, fmt.Errorf("scanning progression: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// UpsertProgressions writes one row per exercise, keyed by (user_id,
// exercise_name). Concurrent completions are last-writer-wins.
func (db *DB) UpsertProgressions(ctx context.Context, userID int, updates []models.ExerciseProgression) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range updates {
		_, err := tx.Exec(ctx,
			`INSERT INTO exercise_progressions (user_id, exercise_name, next_target_reps, next_target_load, overperformance_streak, weekly_increments, week_of_year, last_session_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			 ON CONFLICT (user_id, exercise_name) DO UPDATE SET
			   next_target_reps = EXCLUDED.next_target_reps,
			   next_target_load = EXCLUDED.next_target_load,
			   overperformance_streak = EXCLUDED.overperformance_streak,
			   weekly_increments = EXCLUDED.weekly_increments,
			   week_of_year = EXCLUDED.week_of_year,
			   last_session_at = EXCLUDED.last_session_at`,
			userID, p.ExerciseName, p.NextTargetReps, p.NextTargetLoad,
			p.OverperformanceStreak, p.WeeklyIncrements, p.WeekOfYear, p.LastSessionAt)
		if err != nil {
			return fmt.Errorf("upserting progression %q: %w", p.ExerciseName, err)
		}
	}

	return tx.Commit(ctx)
}

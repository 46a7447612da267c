package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/reppulse/internal/equipment"
	"github.com/claude/reppulse/internal/goals"
	"github.com/claude/reppulse/internal/models"
	"github.com/jackc/pgx/v5"
)

// CreateProfile inserts a new profile and returns its user id.
func (db *DB) CreateProfile(ctx context.Context, p models.Profile) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO profiles (fitness_level, equipment, skill_score, primary_goal, secondary_goals, goal_weights)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING user_id`,
		p.FitnessLevel, equipmentStrings(p.Equipment), p.SkillScore,
		p.PrimaryGoal, p.SecondaryGoals, p.GoalWeights).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting profile: %w", err)
	}
	return id, nil
}

// GetProfile retrieves a profile by user id.
func (db *DB) GetProfile(ctx context.Context, userID int) (*models.Profile, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT user_id, fitness_level, equipment, skill_score, primary_goal, secondary_goals, goal_weights, created_at, updated_at
		 FROM profiles WHERE user_id = $1`, userID)

	var (
		p     models.Profile
		equip []string
	)
	err := row.Scan(&p.UserID, &p.FitnessLevel, &equip, &p.SkillScore,
		&p.PrimaryGoal, &p.SecondaryGoals, &p.GoalWeights, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	p.Equipment = equipmentIDs(equip)
	return &p, nil
}

// UpdateProfileGoals replaces the profile's goal selection and derived
// weight map.
func (db *DB) UpdateProfileGoals(ctx context.Context, userID int, primary string, secondaries []string, weights goals.Weights) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE profiles
		 SET primary_goal = $2, secondary_goals = $3, goal_weights = $4, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, primary, secondaries, weights)
	if err != nil {
		return fmt.Errorf("updating profile goals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfileEquipment replaces the profile's canonical equipment set.
func (db *DB) UpdateProfileEquipment(ctx context.Context, userID int, equip []equipment.ID) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE profiles SET equipment = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, equipmentStrings(equip))
	if err != nil {
		return fmt.Errorf("updating profile equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSkillScore stores a new skill score for the user.
func (db *DB) UpdateSkillScore(ctx context.Context, userID, score int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE profiles SET skill_score = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, score)
	if err != nil {
		return fmt.Errorf("updating skill score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProfile removes a profile; sessions, rounds, and progression
// rows cascade.
func (db *DB) DeleteProfile(ctx context.Context, userID int) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func equipmentStrings(ids []equipment.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func equipmentIDs(items []string) []equipment.ID {
	out := make([]equipment.ID, len(items))
	for i, item := range items {
		out[i] = equipment.ID(item)
	}
	return out
}

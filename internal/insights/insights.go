// Package insights derives behavioral signals from a user's session
// history: adherence, fatigue, muscle-group preference, and per-exercise
// performance. The signals feed framework selection and are exposed to
// downstream consumers over the API and MCP surfaces.
package insights

import (
	"math"
	"time"

	"github.com/claude/reppulse/internal/models"
)

// DefaultWindowSize is the number of most recent sessions considered for
// insight computation. Streaks scan the full history regardless.
const DefaultWindowSize = 8

// fatigueDecay is the per-session-step recency decay applied when
// averaging fatigue scores, newest first.
const fatigueDecay = 0.8

// TimeWindow buckets the hour a session was started.
type TimeWindow string

const (
	WindowMorning     TimeWindow = "morning"
	WindowAfternoon   TimeWindow = "afternoon"
	WindowEvening     TimeWindow = "evening"
	WindowLateNight   TimeWindow = "late-night"
	WindowUnavailable TimeWindow = "unavailable"
)

// TimeOfDayAdherence describes when the user actually trains.
type TimeOfDayAdherence struct {
	PreferredWindow TimeWindow `json:"preferred_window"`
	Consistency     float64    `json:"consistency"`
	AverageHour     *float64   `json:"average_hour,omitempty"`
}

// ExercisePerformance summarizes how one exercise has gone across the
// window.
type ExercisePerformance struct {
	CompletionRatio       float64  `json:"completion_ratio"`
	AverageSecondsPerUnit *float64 `json:"average_seconds_per_unit,omitempty"`
	Underperformed        bool     `json:"underperformed"`
	Samples               int      `json:"samples"`
}

// Insights is the full set of derived personalization signals.
type Insights struct {
	AverageHitRate      float64                        `json:"average_hit_rate"`
	SkipRate            float64                        `json:"skip_rate"`
	AverageRating       *float64                       `json:"average_rating,omitempty"`
	FatigueTrend        float64                        `json:"fatigue_trend"`
	MusclePreference    map[string]float64             `json:"muscle_preference"`
	ExercisePerformance map[string]ExercisePerformance `json:"exercise_performance"`
	TimeOfDayAdherence  TimeOfDayAdherence             `json:"time_of_day_adherence"`
	StreakLength        int                            `json:"streak_length"`
}

// SessionSummary is the per-session performance digest returned from the
// completion flow.
type SessionSummary struct {
	AverageHitRate float64  `json:"average_hit_rate"`
	SkipRate       float64  `json:"skip_rate"`
	AverageRating  *float64 `json:"average_rating,omitempty"`
}

// hitRatio is the round's actual/target ratio capped at 1.5 to bound
// outlier influence.
func hitRatio(r models.WorkoutRound) float64 {
	ratio := float64(r.ActualValue()) / float64(r.EffectiveTarget())
	return math.Min(ratio, 1.5)
}

func bucketFor(hour int) TimeWindow {
	switch {
	case hour >= 5 && hour < 12:
		return WindowMorning
	case hour >= 12 && hour < 17:
		return WindowAfternoon
	case hour >= 17 && hour < 22:
		return WindowEvening
	default:
		return WindowLateNight
	}
}

var bucketOrder = []TimeWindow{WindowMorning, WindowAfternoon, WindowEvening, WindowLateNight}

// Compute derives insights from a user's sessions, which must be ordered
// newest first. Only the most recent windowSize sessions contribute to
// the windowed signals; the streak walks the entire slice.
func Compute(sessions []models.WorkoutSession, windowSize int) Insights {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	recent := sessions
	if len(recent) > windowSize {
		recent = recent[:windowSize]
	}

	var (
		hitSum       float64
		hitCount     int
		skippedCount int
		totalRounds  int
		ratingSum    float64
		ratingCount  int
	)
	fatigueScores := make([]float64, 0, len(recent))
	type prefBucket struct {
		score float64
		count int
	}
	prefs := make(map[string]*prefBucket)
	type exBucket struct {
		ratioSum     float64
		ratioCount   int
		underperform int
		total        int
		secondsSum   float64
		secondsCount int
	}
	exercises := make(map[string]*exBucket)
	type timeBucket struct {
		count   int
		hourSum int
	}
	timeBuckets := make(map[TimeWindow]*timeBucket, 4)
	for _, w := range bucketOrder {
		timeBuckets[w] = &timeBucket{}
	}

	for _, session := range recent {
		hour := session.CreatedAt.Hour()
		tb := timeBuckets[bucketFor(hour)]
		tb.count++
		tb.hourSum += hour

		if session.PerceivedExertion != nil {
			ratingSum += float64(*session.PerceivedExertion)
			ratingCount++
		}

		var (
			sessionHitSum   float64
			sessionHitCount int
			sessionSkipped  int
			sessionTotal    int
		)

		for _, round := range session.Rounds {
			totalRounds++
			if round.Skipped {
				skippedCount++
				sessionSkipped++
				sessionTotal++
				continue
			}

			ratio := hitRatio(round)
			hitSum += ratio
			hitCount++
			sessionHitSum += ratio
			sessionHitCount++
			sessionTotal++

			pref := prefs[round.MuscleGroup]
			if pref == nil {
				pref = &prefBucket{}
				prefs[round.MuscleGroup] = pref
			}
			pref.score += ratio
			pref.count++

			ex := exercises[round.ExerciseName]
			if ex == nil {
				ex = &exBucket{}
				exercises[round.ExerciseName] = ex
			}
			ex.total++
			ex.ratioSum += ratio
			ex.ratioCount++
			if ratio < 0.9 {
				ex.underperform++
			}

			if round.ActualSeconds != nil {
				completedUnits := round.EffectiveTarget()
				if round.IsHold {
					completedUnits = round.ActualValue()
				} else if round.ActualReps != nil {
					completedUnits = *round.ActualReps
				}
				if completedUnits > 0 {
					ex.secondsSum += float64(*round.ActualSeconds) / float64(completedUnits)
					ex.secondsCount++
				}
			}
		}

		sessionHitRate := 1.0
		if sessionHitCount > 0 {
			sessionHitRate = sessionHitSum / float64(sessionHitCount)
		}
		sessionSkipRate := 0.0
		if sessionTotal > 0 {
			sessionSkipRate = float64(sessionSkipped) / float64(sessionTotal)
		}
		fatigueScores = append(fatigueScores, fatigueScore(sessionSkipRate, sessionHitRate, session.PerceivedExertion))
	}

	out := Insights{
		AverageHitRate:      1.0,
		MusclePreference:    make(map[string]float64, len(prefs)),
		ExercisePerformance: make(map[string]ExercisePerformance, len(exercises)),
		StreakLength:        streakLength(sessions),
	}
	if hitCount > 0 {
		out.AverageHitRate = hitSum / float64(hitCount)
	}
	if totalRounds > 0 {
		out.SkipRate = float64(skippedCount) / float64(totalRounds)
	}
	if ratingCount > 0 {
		avg := ratingSum / float64(ratingCount)
		out.AverageRating = &avg
	}
	out.FatigueTrend = weightedFatigueTrend(fatigueScores)

	for muscle, bucket := range prefs {
		ratio := 1.0
		if bucket.count > 0 {
			ratio = bucket.score / float64(bucket.count)
		}
		out.MusclePreference[muscle] = math.Min(math.Max(ratio, 0.8), 1.3)
	}

	for name, bucket := range exercises {
		perf := ExercisePerformance{CompletionRatio: 1.0, Samples: bucket.total}
		if bucket.ratioCount > 0 {
			perf.CompletionRatio = bucket.ratioSum / float64(bucket.ratioCount)
		}
		if bucket.secondsCount > 0 {
			avg := bucket.secondsSum / float64(bucket.secondsCount)
			perf.AverageSecondsPerUnit = &avg
		}
		underperformRate := 0.0
		if bucket.total > 0 {
			underperformRate = float64(bucket.underperform) / float64(bucket.total)
		}
		perf.Underperformed = underperformRate > 0.35 || perf.CompletionRatio < 0.9
		out.ExercisePerformance[name] = perf
	}

	totalTimeSamples := 0
	for _, tb := range timeBuckets {
		totalTimeSamples += tb.count
	}
	adherence := TimeOfDayAdherence{PreferredWindow: WindowUnavailable}
	if totalTimeSamples > 0 {
		best := bucketOrder[0]
		for _, w := range bucketOrder[1:] {
			if timeBuckets[w].count > timeBuckets[best].count {
				best = w
			}
		}
		preferred := timeBuckets[best]
		adherence.PreferredWindow = best
		adherence.Consistency = float64(preferred.count) / float64(totalTimeSamples)
		if preferred.count > 0 {
			avg := math.Round(float64(preferred.hourSum)/float64(preferred.count)*10) / 10
			adherence.AverageHour = &avg
		}
	}
	out.TimeOfDayAdherence = adherence
	return out
}

// fatigueScore combines a session's skip rate, shortfall against
// targets, and any above-neutral effort rating into a single score.
func fatigueScore(skipRate, hitRate float64, rating *int) float64 {
	score := skipRate * 0.5
	if hitRate < 1 {
		score += 1 - hitRate
	}
	if rating != nil && *rating > 3 {
		score += float64(*rating-3) / 5
	}
	return math.Max(0, score)
}

func weightedFatigueTrend(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var weightedSum, weightTotal float64
	for i, score := range scores {
		weight := math.Pow(fatigueDecay, float64(i))
		weightedSum += score * weight
		weightTotal += weight
	}
	if weightTotal == 0 {
		return 0
	}
	return weightedSum / weightTotal
}

// streakLength counts consecutive calendar days ending at the most
// recent session day on which at least one completed session exists.
// Same-day sessions are deduplicated; the first incomplete session or a
// gap of more than one day breaks the streak.
func streakLength(sessions []models.WorkoutSession) int {
	streak := 0
	var lastDay time.Time
	counted := make(map[string]bool)
	for _, session := range sessions {
		day := session.CreatedAt.UTC().Truncate(24 * time.Hour)
		key := day.Format("2006-01-02")
		if counted[key] {
			continue
		}
		counted[key] = true

		if !session.Completed {
			break
		}
		if streak == 0 {
			streak = 1
			lastDay = day
			continue
		}
		diff := int(lastDay.Sub(day).Hours() / 24)
		switch diff {
		case 0:
			continue
		case 1:
			streak++
			lastDay = day
		default:
			return streak
		}
	}
	return streak
}

// Summarize digests a single session's rounds into average hit rate,
// skip rate, and the reported effort rating.
func Summarize(rounds []models.WorkoutRound, rating *int) SessionSummary {
	var (
		hitSum   float64
		hitCount int
		skipped  int
	)
	for _, round := range rounds {
		if round.Skipped {
			skipped++
			continue
		}
		hitSum += hitRatio(round)
		hitCount++
	}

	total := len(rounds)
	if total == 0 {
		total = 1
	}
	summary := SessionSummary{
		AverageHitRate: 1.0,
		SkipRate:       float64(skipped) / float64(total),
	}
	if hitCount > 0 {
		summary.AverageHitRate = hitSum / float64(hitCount)
	}
	if rating != nil {
		avg := float64(*rating)
		summary.AverageRating = &avg
	}
	return summary
}

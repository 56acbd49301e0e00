package utils

import "math"

// DefaultWeightKg is the reference body weight used when a user has no
// profile weight on record.
const DefaultWeightKg = 70.0

// metValues maps (workout type, intensity) to its MET constant.
// kcal = MET * weight(kg) * hours.
var metValues = map[string]map[string]float64{
	"cardio": {
		"low":    3.5,  // light walking
		"medium": 7.0,  // jogging / moderate cycling
		"high":   10.0, // running / intense cycling
	},
	"strength": {
		"low":    3.0,
		"medium": 5.0,
		"high":   8.0, // heavy weights / circuit training
	},
	"yoga": {
		"low":    2.5,
		"medium": 3.0,
		"high":   4.0,
	},
	"sports": {
		"low":    4.0,
		"medium": 6.0,
		"high":   8.0,
	},
	"other": {
		"low":    3.0,
		"medium": 5.0,
		"high":   7.0,
	},
}

// defaultMET is used for any (type, intensity) pair not in the table.
const defaultMET = 5.0

// CalculateStepsCalories estimates energy burned from a step count.
// Base cost is 0.04 kcal per step scaled by body mass; when a duration is
// known the estimate shifts by at most -20%/+30% for cadence away from
// 100 steps/min.
func CalculateStepsCalories(steps int, weightKg float64, durationMin int) int {
	if steps <= 0 {
		return 0
	}
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}

	calories := float64(steps) * 0.04 * (weightKg / 70.0)

	if durationMin > 0 {
		pace := float64(steps) / float64(durationMin)
		multiplier := 1 + (pace-100)/500
		if multiplier > 1.3 {
			multiplier = 1.3
		}
		if multiplier < 0.8 {
			multiplier = 0.8
		}
		calories *= multiplier
	}

	return int(math.Round(calories))
}

// CalculateWorkoutCalories estimates energy burned from a workout using the
// standard MET formula. A zero or negative duration yields zero.
func CalculateWorkoutCalories(workoutType, intensity string, durationMin int, weightKg float64) int {
	if durationMin <= 0 {
		return 0
	}
	if weightKg <= 0 {
		weightKg = DefaultWeightKg
	}

	met := defaultMET
	if byIntensity, ok := metValues[workoutType]; ok {
		if v, ok := byIntensity[intensity]; ok {
			met = v
		}
	}

	hours := float64(durationMin) / 60.0
	return int(math.Round(met * weightKg * hours))
}

// ActivityLevel classifies a daily step count. Thresholds are inclusive of
// the lower bound.
func ActivityLevel(steps int) string {
	switch {
	case steps < 5000:
		return "Sedentary"
	case steps < 7500:
		return "Lightly Active"
	case steps < 10000:
		return "Moderately Active"
	case steps < 12500:
		return "Very Active"
	default:
		return "Highly Active"
	}
}

// GoalProgress returns the percentage toward a goal, capped at 100.
func GoalProgress(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	p := int(math.Round(float64(current) / float64(goal) * 100))
	if p > 100 {
		return 100
	}
	return p
}

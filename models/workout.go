package models

import (
	"time"

	"gorm.io/gorm"
)

type WorkoutType string

const (
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutStrength WorkoutType = "strength"
	WorkoutYoga     WorkoutType = "yoga"
	WorkoutSports   WorkoutType = "sports"
	WorkoutOther    WorkoutType = "other"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

func ValidWorkoutType(s string) bool {
	switch WorkoutType(s) {
	case WorkoutCardio, WorkoutStrength, WorkoutYoga, WorkoutSports, WorkoutOther:
		return true
	}
	return false
}

func ValidIntensity(s string) bool {
	switch Intensity(s) {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return true
	}
	return false
}

// Workout is a single logged session. Unlike steps there is no uniqueness
// constraint; several workouts on the same day are fine.
type Workout struct {
	gorm.Model
	UserID         uint        `gorm:"index;not null"`
	Date           time.Time   `gorm:"index;not null"`
	Type           WorkoutType `gorm:"not null"`
	Name           string      `gorm:"not null"`
	Duration       int         `gorm:"not null"` // minutes
	Intensity      Intensity   `gorm:"not null"`
	CaloriesBurned int         `gorm:"not null"` // derived
	Notes          string
}

type WorkoutResponse struct {
	ID             uint        `json:"id"`
	UserID         uint        `json:"userId"`
	Date           string      `json:"date"`
	Type           WorkoutType `json:"type"`
	Name           string      `json:"name"`
	Duration       int         `json:"duration"`
	Intensity      Intensity   `json:"intensity"`
	CaloriesBurned int         `json:"caloriesBurned"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

func (w *Workout) Response() WorkoutResponse {
	return WorkoutResponse{
		ID:             w.ID,
		UserID:         w.UserID,
		Date:           w.Date.Format("2006-01-02"),
		Type:           w.Type,
		Name:           w.Name,
		Duration:       w.Duration,
		Intensity:      w.Intensity,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
		CreatedAt:      w.CreatedAt,
	}
}

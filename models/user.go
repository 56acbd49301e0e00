package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder. Profile fields are nullable so a cleared field is
// distinguishable from a never-set one. Goal columns carry the registration
// defaults; GoalsSet records whether the user has explicitly saved goals yet
// (new-user detection for the client).
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	Weight *float64
	Height *float64
	Age    *int
	Gender *string

	DailySteps     int  `gorm:"not null;default:10000"`
	DailyCalories  int  `gorm:"not null;default:500"`
	WeeklyWorkouts int  `gorm:"not null;default:3"`
	GoalsSet       bool `gorm:"not null;default:false"`
}

// Default goal values applied at registration.
const (
	DefaultDailySteps     = 10000
	DefaultDailyCalories  = 500
	DefaultWeeklyWorkouts = 3
)

// ProfileResponse is the sanitized user shape sent to clients. The password
// hash never leaves the service layer.
type ProfileResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Profile   ProfileFields `json:"profile"`
	Goals     GoalsResponse `json:"goals"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ProfileFields struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Gender *string  `json:"gender,omitempty"`
}

type GoalsResponse struct {
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
	Workouts int `json:"workouts"`
}

// Response strips credentials and flattens the stored user for the API.
func (u *User) Response() ProfileResponse {
	return ProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Profile: ProfileFields{
			Weight: u.Weight,
			Height: u.Height,
			Age:    u.Age,
			Gender: u.Gender,
		},
		Goals: GoalsResponse{
			Steps:    u.DailySteps,
			Calories: u.DailyCalories,
			Workouts: u.WeeklyWorkouts,
		},
		CreatedAt: u.CreatedAt,
	}
}

// WeightOrDefault returns the profile weight for calorie math, falling back to
// the 70kg reference weight when the profile has none.
func (u *User) WeightOrDefault() float64 {
	if u.Weight != nil && *u.Weight > 0 {
		return *u.Weight
	}
	return 70
}

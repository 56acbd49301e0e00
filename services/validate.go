package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// One declarative range per field, shared by the create and update paths so
// the bounds can never drift apart.

type intRange struct {
	min, max int
	message  string
}

func (r intRange) check(v int) error {
	if v < r.min || v > r.max {
		return invalid(r.message)
	}
	return nil
}

type floatRange struct {
	min, max float64
	message  string
}

func (r floatRange) check(v float64) error {
	if v < r.min || v > r.max {
		return invalid(r.message)
	}
	return nil
}

var (
	stepsRange           = intRange{0, 100000, "Steps must be between 0 and 100,000"}
	stepsDurationRange   = intRange{1, 1440, "Duration must be between 1 and 1440 minutes"}
	workoutDurationRange = intRange{5, 480, "Duration must be between 5 and 480 minutes"}

	goalStepsRange    = intRange{1000, 50000, "Daily steps goal must be between 1,000 and 50,000"}
	goalCaloriesRange = intRange{100, 2000, "Daily calories goal must be between 100 and 2,000"}
	goalWorkoutsRange = intRange{1, 14, "Weekly workouts goal must be between 1 and 14"}

	weightRange = floatRange{20, 300, "Weight must be between 20 and 300 kg"}
	heightRange = floatRange{100, 250, "Height must be between 100 and 250 cm"}
	ageRange    = intRange{13, 120, "Age must be between 13 and 120 years"}
)

const maxNotesLength = 500

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return invalid("Please provide a valid email address")
	}
	return nil
}

var hasLetterPattern = regexp.MustCompile(`[a-zA-Z]`)

// validatePassword accumulates all failed rules joined with ", ", matching
// the per-field message shape of underlying-store validation errors.
func validatePassword(password string) error {
	var problems []string
	if len(password) < 6 {
		problems = append(problems, "Password must be at least 6 characters long")
	}
	if len(password) > 100 {
		problems = append(problems, "Password cannot exceed 100 characters")
	}
	if !hasLetterPattern.MatchString(password) {
		problems = append(problems, "Password must contain at least one letter")
	}
	if len(problems) > 0 {
		return invalid(strings.Join(problems, ", "))
	}
	return nil
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return invalid("Name must be at least 2 characters long")
	}
	if len(name) > 100 {
		return invalid("Name cannot exceed 100 characters")
	}
	return nil
}

func validateGender(gender string) error {
	if gender != "male" && gender != "female" {
		return invalid(`Gender must be either "male" or "female"`)
	}
	return nil
}

func validateWorkoutType(t string) error {
	if !models.ValidWorkoutType(t) {
		return invalid("Invalid workout type")
	}
	return nil
}

func validateIntensity(i string) error {
	if !models.ValidIntensity(i) {
		return invalid("Invalid intensity level")
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return invalid("Notes cannot exceed 500 characters")
	}
	return nil
}

// userWeight loads the owner's profile weight for server-side calorie
// derivation, defaulting to the 70kg reference when unset.
func userWeight(ctx context.Context, db *gorm.DB, userID uint) (float64, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.DefaultWeightKg, nil
		}
		return 0, err
	}
	return user.WeightOrDefault(), nil
}

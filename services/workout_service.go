package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

// List returns the user's workouts newest first, capped at a year.
func (s *WorkoutService) List(ctx context.Context, userID uint, f ListFilter) ([]models.Workout, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	q, err := f.apply(q, time.Now())
	if err != nil {
		return nil, err
	}
	var workouts []models.Workout
	if err := q.Order("date DESC").Limit(maxListRows).Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

type CreateWorkoutInput struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Duration  *int   `json:"duration"`
	Intensity string `json:"intensity"`
	Notes     string `json:"notes"`
}

// Create logs a workout. Several workouts on the same day are allowed.
func (s *WorkoutService) Create(ctx context.Context, userID uint, in CreateWorkoutInput) (*models.Workout, error) {
	name := strings.TrimSpace(in.Name)
	if in.Date == "" || in.Type == "" || name == "" || in.Duration == nil || in.Intensity == "" {
		return nil, invalid("Date, type, name, duration, and intensity are required")
	}
	if err := workoutDurationRange.check(*in.Duration); err != nil {
		return nil, err
	}
	if err := validateWorkoutType(in.Type); err != nil {
		return nil, err
	}
	if err := validateIntensity(in.Intensity); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.Notes)
	if err := validateNotes(notes); err != nil {
		return nil, err
	}
	day, err := utils.ParseDay(in.Date)
	if err != nil {
		return nil, invalid("Invalid date, expected YYYY-MM-DD")
	}

	weight, err := userWeight(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	workout := models.Workout{
		UserID:         userID,
		Date:           day,
		Type:           models.WorkoutType(in.Type),
		Name:           name,
		Duration:       *in.Duration,
		Intensity:      models.Intensity(in.Intensity),
		CaloriesBurned: utils.CalculateWorkoutCalories(in.Type, in.Intensity, *in.Duration, weight),
		Notes:          notes,
	}
	if err := s.db.WithContext(ctx).Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

type UpdateWorkoutInput struct {
	Type      *string `json:"type"`
	Name      *string `json:"name"`
	Duration  *int    `json:"duration"`
	Intensity *string `json:"intensity"`
	Notes     *string `json:"notes"`
}

// Update modifies a workout by id, scoped to the owning user, re-deriving
// calories whenever type, intensity or duration change.
func (s *WorkoutService) Update(ctx context.Context, userID, id uint, in UpdateWorkoutInput) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Type != nil {
		if err := validateWorkoutType(*in.Type); err != nil {
			return nil, err
		}
		workout.Type = models.WorkoutType(*in.Type)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("Name cannot be empty")
		}
		workout.Name = name
	}
	if in.Duration != nil {
		if err := workoutDurationRange.check(*in.Duration); err != nil {
			return nil, err
		}
		workout.Duration = *in.Duration
	}
	if in.Intensity != nil {
		if err := validateIntensity(*in.Intensity); err != nil {
			return nil, err
		}
		workout.Intensity = models.Intensity(*in.Intensity)
	}
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		if err := validateNotes(notes); err != nil {
			return nil, err
		}
		workout.Notes = notes
	}

	if in.Type != nil || in.Duration != nil || in.Intensity != nil {
		weight, err := userWeight(ctx, s.db, userID)
		if err != nil {
			return nil, err
		}
		workout.CaloriesBurned = utils.CalculateWorkoutCalories(
			string(workout.Type), string(workout.Intensity), workout.Duration, weight)
	}

	if err := s.db.WithContext(ctx).Save(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// Delete removes a workout by id, scoped to the owning user.
func (s *WorkoutService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

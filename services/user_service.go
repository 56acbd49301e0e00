package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileData is the sanitized user plus derived body metrics when both
// height and weight are on record.
type ProfileData struct {
	models.ProfileResponse
	BMI         *float64 `json:"bmi,omitempty"`
	BMICategory string   `json:"bmiCategory,omitempty"`
}

func (s *UserService) load(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*ProfileData, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &ProfileData{ProfileResponse: user.Response()}
	if user.Height != nil && user.Weight != nil {
		if bmi, err := utils.CalculateBMI(*user.Height, *user.Weight); err == nil {
			out.BMI = &bmi
			out.BMICategory = utils.BMICategory(bmi)
		}
	}
	return out, nil
}

// ProfileUpdateInput uses three-state fields: absent leaves the stored value
// unchanged, explicit null clears it, a value replaces it.
type ProfileUpdateInput struct {
	Name   utils.OptionalString `json:"name"`
	Weight utils.OptionalFloat  `json:"weight"`
	Height utils.OptionalFloat  `json:"height"`
	Age    utils.OptionalInt    `json:"age"`
	Gender utils.OptionalString `json:"gender"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdateInput) (*ProfileData, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Value == nil {
			return nil, invalid("Name cannot be cleared")
		}
		name := strings.TrimSpace(*in.Name.Value)
		if err := validateName(name); err != nil {
			return nil, err
		}
		user.Name = name
	}
	if in.Weight.Set {
		if in.Weight.Value != nil {
			if err := weightRange.check(*in.Weight.Value); err != nil {
				return nil, err
			}
		}
		user.Weight = in.Weight.Value
	}
	if in.Height.Set {
		if in.Height.Value != nil {
			if err := heightRange.check(*in.Height.Value); err != nil {
				return nil, err
			}
		}
		user.Height = in.Height.Value
	}
	if in.Age.Set {
		if in.Age.Value != nil {
			if err := ageRange.check(*in.Age.Value); err != nil {
				return nil, err
			}
		}
		user.Age = in.Age.Value
	}
	if in.Gender.Set {
		if in.Gender.Value != nil {
			g := strings.ToLower(*in.Gender.Value)
			if err := validateGender(g); err != nil {
				return nil, err
			}
			user.Gender = &g
		} else {
			user.Gender = nil
		}
	}

	// Save with Select so cleared pointer fields are written as NULL rather
	// than skipped as zero values.
	err = s.db.WithContext(ctx).Model(user).
		Select("name", "weight", "height", "age", "gender").
		Updates(map[string]interface{}{
			"name":   user.Name,
			"weight": user.Weight,
			"height": user.Height,
			"age":    user.Age,
			"gender": user.Gender,
		}).Error
	if err != nil {
		return nil, err
	}

	out := &ProfileData{ProfileResponse: user.Response()}
	if user.Height != nil && user.Weight != nil {
		if bmi, err := utils.CalculateBMI(*user.Height, *user.Weight); err == nil {
			out.BMI = &bmi
			out.BMICategory = utils.BMICategory(bmi)
		}
	}
	return out, nil
}

// Goals returns the user's goals, or ErrGoalsNotSet for a user who has never
// explicitly saved them.
func (s *UserService) Goals(ctx context.Context, userID uint) (*models.GoalsResponse, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.GoalsSet {
		return nil, ErrGoalsNotSet
	}
	g := models.GoalsResponse{
		Steps:    user.DailySteps,
		Calories: user.DailyCalories,
		Workouts: user.WeeklyWorkouts,
	}
	return &g, nil
}

type GoalsInput struct {
	Steps    *int `json:"steps"`
	Calories *int `json:"calories"`
	Workouts *int `json:"workouts"`
}

// SetGoals is the initial, all-fields-required write.
func (s *UserService) SetGoals(ctx context.Context, userID uint, in GoalsInput) (*models.GoalsResponse, error) {
	if in.Steps == nil || in.Calories == nil || in.Workouts == nil {
		return nil, invalid("Steps, calories, and workouts goals are required")
	}
	return s.applyGoals(ctx, userID, in)
}

// UpdateGoals is the partial follow-up write.
func (s *UserService) UpdateGoals(ctx context.Context, userID uint, in GoalsInput) (*models.GoalsResponse, error) {
	return s.applyGoals(ctx, userID, in)
}

func (s *UserService) applyGoals(ctx context.Context, userID uint, in GoalsInput) (*models.GoalsResponse, error) {
	if in.Steps != nil {
		if err := goalStepsRange.check(*in.Steps); err != nil {
			return nil, err
		}
	}
	if in.Calories != nil {
		if err := goalCaloriesRange.check(*in.Calories); err != nil {
			return nil, err
		}
	}
	if in.Workouts != nil {
		if err := goalWorkoutsRange.check(*in.Workouts); err != nil {
			return nil, err
		}
	}

	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Steps != nil {
		user.DailySteps = *in.Steps
	}
	if in.Calories != nil {
		user.DailyCalories = *in.Calories
	}
	if in.Workouts != nil {
		user.WeeklyWorkouts = *in.Workouts
	}
	user.GoalsSet = true

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	g := models.GoalsResponse{
		Steps:    user.DailySteps,
		Calories: user.DailyCalories,
		Workouts: user.WeeklyWorkouts,
	}
	return &g, nil
}

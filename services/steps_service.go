package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

// maxListRows caps any activity listing at one year of data.
const maxListRows = 365

// defaultListDays is the raw fetch window when no filter is given.
const defaultListDays = 30

type StepsService struct {
	db *gorm.DB
}

func NewStepsService(db *gorm.DB) *StepsService {
	return &StepsService{db: db}
}

// ListFilter narrows an activity listing. StartDate/EndDate (both required
// together, YYYY-MM-DD, inclusive) win over Days.
type ListFilter struct {
	Days      int
	StartDate string
	EndDate   string
}

func (f ListFilter) apply(q *gorm.DB, now time.Time) (*gorm.DB, error) {
	if f.StartDate != "" && f.EndDate != "" {
		start, err := utils.ParseDay(f.StartDate)
		if err != nil {
			return nil, invalid("Invalid startDate, expected YYYY-MM-DD")
		}
		end, err := utils.ParseDay(f.EndDate)
		if err != nil {
			return nil, invalid("Invalid endDate, expected YYYY-MM-DD")
		}
		return q.Where("date BETWEEN ? AND ?", start, end), nil
	}
	days := f.Days
	if days <= 0 {
		days = defaultListDays
	}
	return q.Where("date >= ?", utils.DaysAgo(days, now)), nil
}

// List returns the user's entries newest first, capped at a year.
func (s *StepsService) List(ctx context.Context, userID uint, f ListFilter) ([]models.StepsEntry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	q, err := f.apply(q, time.Now())
	if err != nil {
		return nil, err
	}
	var entries []models.StepsEntry
	if err := q.Order("date DESC").Limit(maxListRows).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type UpsertStepsInput struct {
	Date     string `json:"date"`
	Steps    *int   `json:"steps"`
	Duration *int   `json:"duration"`
}

// Upsert creates the day's entry or, when one already exists for the
// (user, date) pair, updates it in place. The second return reports whether a
// new record was created. Calories are always derived server-side.
func (s *StepsService) Upsert(ctx context.Context, userID uint, in UpsertStepsInput) (*models.StepsEntry, bool, error) {
	if in.Date == "" || in.Steps == nil || in.Duration == nil {
		return nil, false, invalid("Date, steps, and duration are required")
	}
	if err := stepsRange.check(*in.Steps); err != nil {
		return nil, false, err
	}
	if err := stepsDurationRange.check(*in.Duration); err != nil {
		return nil, false, err
	}
	day, err := utils.ParseDay(in.Date)
	if err != nil {
		return nil, false, invalid("Invalid date, expected YYYY-MM-DD")
	}

	weight, err := userWeight(ctx, s.db, userID)
	if err != nil {
		return nil, false, err
	}
	calories := utils.CalculateStepsCalories(*in.Steps, weight, *in.Duration)

	var entry models.StepsEntry
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = models.StepsEntry{
			UserID:         userID,
			Date:           day,
			Steps:          *in.Steps,
			Duration:       *in.Duration,
			CaloriesBurned: calories,
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, false, err
		}
		return &entry, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	entry.Steps = *in.Steps
	entry.Duration = *in.Duration
	entry.CaloriesBurned = calories
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, false, err
	}
	return &entry, false, nil
}

type UpdateStepsInput struct {
	Steps    *int `json:"steps"`
	Duration *int `json:"duration"`
}

// Update modifies an entry by id, scoped to the owning user. A foreign or
// absent id is ErrNotFound either way.
func (s *StepsService) Update(ctx context.Context, userID, id uint, in UpdateStepsInput) (*models.StepsEntry, error) {
	var entry models.StepsEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Steps != nil {
		if err := stepsRange.check(*in.Steps); err != nil {
			return nil, err
		}
		entry.Steps = *in.Steps
	}
	if in.Duration != nil {
		if err := stepsDurationRange.check(*in.Duration); err != nil {
			return nil, err
		}
		entry.Duration = *in.Duration
	}
	if in.Steps != nil || in.Duration != nil {
		weight, err := userWeight(ctx, s.db, userID)
		if err != nil {
			return nil, err
		}
		entry.CaloriesBurned = utils.CalculateStepsCalories(entry.Steps, weight, entry.Duration)
	}

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes an entry by id, scoped to the owning user.
func (s *StepsService) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.StepsEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

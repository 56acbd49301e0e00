package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

const (
	// rawWindowDays is how far back raw records are fetched for aggregation.
	rawWindowDays = 30
	// chartWindowDays is the fixed chart series length.
	chartWindowDays = 14
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// DayPoint is one day of the chart series. A day with no steps entry still
// counts its workout calories.
type DayPoint struct {
	Date     string `json:"date"`
	Steps    int    `json:"steps"`
	Calories int    `json:"calories"`
	Workouts int    `json:"workouts"`
}

type GoalProgressPct struct {
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
	Workouts int `json:"workouts"`
}

// Dashboard is the daily snapshot plus trailing-week totals.
type Dashboard struct {
	TodaySteps     int                  `json:"todaySteps"`
	TodayCalories  int                  `json:"todayCalories"`
	TodayWorkouts  int                  `json:"todayWorkouts"`
	WeeklySteps    int                  `json:"weeklySteps"`
	WeeklyCalories int                  `json:"weeklyCalories"`
	WeeklyWorkouts int                  `json:"weeklyWorkouts"`
	ActivityLevel  string               `json:"activityLevel"`
	Goals          models.GoalsResponse `json:"goals"`
	Progress       GoalProgressPct      `json:"progress"`
}

type BestStepDay struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

type BestCalorieDay struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
}

// Report is the full progress view backing the charts page.
type Report struct {
	Chart            []DayPoint     `json:"chart"`
	TotalSteps       int            `json:"totalSteps"`
	TotalCalories    int            `json:"totalCalories"`
	TotalWorkouts    int            `json:"totalWorkouts"`
	AverageSteps     int            `json:"averageSteps"`
	AverageCalories  int            `json:"averageCalories"`
	BestStepDay      BestStepDay    `json:"bestStepDay"`
	BestCalorieDay   BestCalorieDay `json:"bestCalorieDay"`
	Streak           int            `json:"streak"`
	ThisWeekSteps    int            `json:"thisWeekSteps"`
	LastWeekSteps    int            `json:"lastWeekSteps"`
	ThisWeekCalories int            `json:"thisWeekCalories"`
	LastWeekCalories int            `json:"lastWeekCalories"`
	StepsChange      string         `json:"stepsChange"`
	CaloriesChange   string         `json:"caloriesChange"`
}

func (s *ProgressService) fetchWindow(ctx context.Context, userID uint, from time.Time) ([]models.StepsEntry, []models.Workout, error) {
	var steps []models.StepsEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC").
		Find(&steps).Error
	if err != nil {
		return nil, nil, err
	}
	var workouts []models.Workout
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date DESC").
		Find(&workouts).Error
	if err != nil {
		return nil, nil, err
	}
	return steps, workouts, nil
}

// Dashboard aggregates today's snapshot and trailing-7-day totals against
// the user's goals. now is injected so "today" is test-controllable.
func (s *ProgressService) Dashboard(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	user := models.User{}
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	steps, workouts, err := s.fetchWindow(ctx, userID, utils.DaysAgo(rawWindowDays, now))
	if err != nil {
		return nil, err
	}

	todayKey := utils.DayKey(now)
	out := &Dashboard{
		Goals: models.GoalsResponse{
			Steps:    user.DailySteps,
			Calories: user.DailyCalories,
			Workouts: user.WeeklyWorkouts,
		},
	}

	for i := range steps {
		if utils.DayKey(steps[i].Date) == todayKey {
			out.TodaySteps = steps[i].Steps
			out.TodayCalories += steps[i].CaloriesBurned
			break
		}
	}
	for i := range workouts {
		if utils.DayKey(workouts[i].Date) == todayKey {
			out.TodayCalories += workouts[i].CaloriesBurned
			out.TodayWorkouts++
		}
	}

	// Trailing 7 calendar days, today included.
	weekFrom := utils.DaysAgo(6, now)
	for i := range steps {
		if !steps[i].Date.Before(weekFrom) {
			out.WeeklySteps += steps[i].Steps
			out.WeeklyCalories += steps[i].CaloriesBurned
		}
	}
	for i := range workouts {
		if !workouts[i].Date.Before(weekFrom) {
			out.WeeklyCalories += workouts[i].CaloriesBurned
			out.WeeklyWorkouts++
		}
	}

	out.ActivityLevel = utils.ActivityLevel(out.TodaySteps)
	out.Progress = GoalProgressPct{
		Steps:    utils.GoalProgress(out.TodaySteps, user.DailySteps),
		Calories: utils.GoalProgress(out.TodayCalories, user.DailyCalories),
		Workouts: utils.GoalProgress(out.WeeklyWorkouts, user.WeeklyWorkouts),
	}
	return out, nil
}

// Report builds the 14-day chart, streak, best days and week-over-week
// comparison from the raw 30-day window.
func (s *ProgressService) Report(ctx context.Context, userID uint, now time.Time) (*Report, error) {
	steps, workouts, err := s.fetchWindow(ctx, userID, utils.DaysAgo(rawWindowDays, now))
	if err != nil {
		return nil, err
	}

	chart := buildChart(steps, workouts, chartWindowDays, now)

	out := &Report{
		Chart:         chart,
		TotalWorkouts: len(workouts),
		Streak:        computeStreak(steps, workouts, now),
	}

	for i := range steps {
		out.TotalSteps += steps[i].Steps
		out.TotalCalories += steps[i].CaloriesBurned
	}
	for i := range workouts {
		out.TotalCalories += workouts[i].CaloriesBurned
	}
	if len(steps) > 0 {
		out.AverageSteps = int(math.Round(float64(out.TotalSteps) / float64(len(steps))))
		den := len(steps)
		if len(workouts) > den {
			den = len(workouts)
		}
		out.AverageCalories = int(math.Round(float64(out.TotalCalories) / float64(den)))
	}

	// Ties keep the first encountered record; steps come back newest first.
	for i := range steps {
		if steps[i].Steps > out.BestStepDay.Steps {
			out.BestStepDay = BestStepDay{Date: utils.DayKey(steps[i].Date), Steps: steps[i].Steps}
		}
	}
	for _, p := range chart {
		if p.Calories > out.BestCalorieDay.Calories {
			out.BestCalorieDay = BestCalorieDay{Date: p.Date, Calories: p.Calories}
		}
	}

	thisWeekStart := utils.StartOfWeek(now)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	lastWeekEnd := thisWeekStart.AddDate(0, 0, -1)

	inThisWeek := func(d time.Time) bool { return !utils.DayOf(d).Before(thisWeekStart) }
	inLastWeek := func(d time.Time) bool {
		day := utils.DayOf(d)
		return !day.Before(lastWeekStart) && !day.After(lastWeekEnd)
	}

	for i := range steps {
		switch {
		case inThisWeek(steps[i].Date):
			out.ThisWeekSteps += steps[i].Steps
			out.ThisWeekCalories += steps[i].CaloriesBurned
		case inLastWeek(steps[i].Date):
			out.LastWeekSteps += steps[i].Steps
			out.LastWeekCalories += steps[i].CaloriesBurned
		}
	}
	for i := range workouts {
		switch {
		case inThisWeek(workouts[i].Date):
			out.ThisWeekCalories += workouts[i].CaloriesBurned
		case inLastWeek(workouts[i].Date):
			out.LastWeekCalories += workouts[i].CaloriesBurned
		}
	}

	out.StepsChange = weeklyChange(out.ThisWeekSteps, out.LastWeekSteps)
	out.CaloriesChange = weeklyChange(out.ThisWeekCalories, out.LastWeekCalories)
	return out, nil
}

// buildChart produces one point per day for the last `days` calendar days,
// oldest first. Days without a steps entry contribute zero steps but still
// count workout calories.
func buildChart(steps []models.StepsEntry, workouts []models.Workout, days int, now time.Time) []DayPoint {
	stepsByDay := make(map[string]*models.StepsEntry, len(steps))
	for i := range steps {
		key := utils.DayKey(steps[i].Date)
		if _, ok := stepsByDay[key]; !ok {
			stepsByDay[key] = &steps[i]
		}
	}
	workoutsByDay := make(map[string][]*models.Workout)
	for i := range workouts {
		key := utils.DayKey(workouts[i].Date)
		workoutsByDay[key] = append(workoutsByDay[key], &workouts[i])
	}

	chart := make([]DayPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := utils.DaysAgo(i, now)
		key := utils.DayKey(day)
		point := DayPoint{Date: key}
		if e, ok := stepsByDay[key]; ok {
			point.Steps = e.Steps
			point.Calories = e.CaloriesBurned
		}
		for _, w := range workoutsByDay[key] {
			point.Calories += w.CaloriesBurned
			point.Workouts++
		}
		chart = append(chart, point)
	}
	return chart
}

// computeStreak counts consecutive calendar days ending today with at least
// one steps entry or workout. An inactive today means zero.
func computeStreak(steps []models.StepsEntry, workouts []models.Workout, now time.Time) int {
	active := make(map[string]bool, len(steps)+len(workouts))
	for i := range steps {
		active[utils.DayKey(steps[i].Date)] = true
	}
	for i := range workouts {
		active[utils.DayKey(workouts[i].Date)] = true
	}

	streak := 0
	for day := utils.DayOf(now); active[utils.DayKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// weeklyChange renders the week-over-week percentage. A zero previous week
// is "+100%" when the current week has activity and "0%" otherwise.
func weeklyChange(current, previous int) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	change := (float64(current) - float64(previous)) / float64(previous) * 100
	return fmt.Sprintf("%+.1f%%", change)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

var testNow = time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC) // a Friday

func stepsOn(daysBack, steps, calories int) models.StepsEntry {
	return models.StepsEntry{
		Date:           utils.DaysAgo(daysBack, testNow),
		Steps:          steps,
		CaloriesBurned: calories,
	}
}

func workoutOn(daysBack, calories int) models.Workout {
	return models.Workout{
		Date:           utils.DaysAgo(daysBack, testNow),
		Type:           models.WorkoutCardio,
		Intensity:      models.IntensityMedium,
		CaloriesBurned: calories,
	}
}

func TestBuildChart(t *testing.T) {
	steps := []models.StepsEntry{
		stepsOn(0, 8000, 320),
		stepsOn(2, 12000, 480),
	}
	workouts := []models.Workout{
		workoutOn(0, 300),
		workoutOn(0, 150),
		workoutOn(1, 200), // workout on a day with no steps entry
	}

	chart := buildChart(steps, workouts, 14, testNow)
	require.Len(t, chart, 14)

	// Oldest first; last element is today.
	assert.Equal(t, utils.DayKey(utils.DaysAgo(13, testNow)), chart[0].Date)
	today := chart[13]
	assert.Equal(t, utils.DayKey(testNow), today.Date)
	assert.Equal(t, 8000, today.Steps)
	assert.Equal(t, 320+300+150, today.Calories)
	assert.Equal(t, 2, today.Workouts)

	// Yesterday has no steps entry but still counts workout calories.
	yesterday := chart[12]
	assert.Equal(t, 0, yesterday.Steps)
	assert.Equal(t, 200, yesterday.Calories)
	assert.Equal(t, 1, yesterday.Workouts)

	// A day with nothing at all is all zeros.
	empty := chart[10]
	assert.Equal(t, 0, empty.Steps)
	assert.Equal(t, 0, empty.Calories)
	assert.Equal(t, 0, empty.Workouts)

	// Day 2 back has its steps.
	assert.Equal(t, 12000, chart[11].Steps)
}

func TestComputeStreak(t *testing.T) {
	t.Run("three consecutive days ending today", func(t *testing.T) {
		steps := []models.StepsEntry{stepsOn(0, 5000, 200), stepsOn(2, 4000, 160)}
		workouts := []models.Workout{workoutOn(1, 300)}
		// nothing on day 3 back
		assert.Equal(t, 3, computeStreak(steps, workouts, testNow))
	})

	t.Run("no activity today means zero", func(t *testing.T) {
		steps := []models.StepsEntry{stepsOn(1, 5000, 200), stepsOn(2, 4000, 160)}
		assert.Equal(t, 0, computeStreak(steps, nil, testNow))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		steps := []models.StepsEntry{stepsOn(0, 5000, 200), stepsOn(1, 4000, 160), stepsOn(3, 6000, 240)}
		assert.Equal(t, 2, computeStreak(steps, nil, testNow))
	})

	t.Run("workout alone keeps a day alive", func(t *testing.T) {
		workouts := []models.Workout{workoutOn(0, 100)}
		assert.Equal(t, 1, computeStreak(nil, workouts, testNow))
	})

	t.Run("no records at all", func(t *testing.T) {
		assert.Equal(t, 0, computeStreak(nil, nil, testNow))
	})
}

func TestWeeklyChange(t *testing.T) {
	cases := []struct {
		current, previous int
		want              string
	}{
		{0, 0, "0%"},
		{100, 0, "+100%"},
		{0, 100, "-100.0%"},
		{150, 100, "+50.0%"},
		{90, 100, "-10.0%"},
		{100, 100, "+0.0%"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, weeklyChange(tc.current, tc.previous),
			"current=%d previous=%d", tc.current, tc.previous)
	}
}

func TestReportWeekBuckets(t *testing.T) {
	// testNow is Friday 2025-03-14; this week started Sunday 2025-03-09
	// (5 days back), last week covers 12 through 6 days back.
	steps := []models.StepsEntry{
		stepsOn(0, 3000, 120),  // this week
		stepsOn(5, 2000, 80),   // Sunday, still this week
		stepsOn(6, 7000, 280),  // Saturday, last week
		stepsOn(12, 1000, 40),  // last week's Sunday
		stepsOn(13, 9000, 360), // before last week, ignored by the buckets
	}
	workouts := []models.Workout{
		workoutOn(1, 250), // this week
		workoutOn(7, 100), // last week
	}

	db, mock := newTestDB(t)
	svc := NewProgressService(db)

	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(stepsRows(steps))
	mock.ExpectQuery(`SELECT \* FROM "workouts"`).
		WillReturnRows(workoutRows(workouts))

	report, err := svc.Report(context.Background(), 1, testNow)
	require.NoError(t, err)

	assert.Equal(t, 3000+2000, report.ThisWeekSteps)
	assert.Equal(t, 7000+1000, report.LastWeekSteps)
	assert.Equal(t, 120+80+250, report.ThisWeekCalories)
	assert.Equal(t, 280+40+100, report.LastWeekCalories)
	assert.Equal(t, "-37.5%", report.StepsChange)
	assert.Equal(t, "+7.1%", report.CaloriesChange)

	// Totals cover the whole 30-day window, not just the two weeks.
	assert.Equal(t, 22000, report.TotalSteps)
	assert.Equal(t, 880+350, report.TotalCalories)
	assert.Equal(t, 2, report.TotalWorkouts)

	assert.Equal(t, BestStepDay{Date: utils.DayKey(utils.DaysAgo(13, testNow)), Steps: 9000}, report.BestStepDay)
	require.Len(t, report.Chart, 14)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboard(t *testing.T) {
	steps := []models.StepsEntry{
		stepsOn(0, 12000, 480), // today
		stepsOn(6, 4000, 160),  // oldest day still inside the trailing week
		stepsOn(7, 9999, 400),  // one day past the week boundary
	}
	workouts := []models.Workout{
		workoutOn(0, 300),
		workoutOn(0, 150),
		workoutOn(6, 100),
		workoutOn(7, 999), // outside the week
	}

	db, mock := newTestDB(t)
	svc := NewProgressService(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "daily_steps", "daily_calories", "weekly_workouts"}).
			AddRow(1, 10000, 2000, 3))
	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(stepsRows(steps))
	mock.ExpectQuery(`SELECT \* FROM "workouts"`).
		WillReturnRows(workoutRows(workouts))

	dash, err := svc.Dashboard(context.Background(), 1, testNow)
	require.NoError(t, err)

	assert.Equal(t, 12000, dash.TodaySteps)
	assert.Equal(t, 480+300+150, dash.TodayCalories)
	assert.Equal(t, 2, dash.TodayWorkouts)

	// Trailing week covers 7 calendar days inclusive of today: day 6 back is
	// in, day 7 back is out.
	assert.Equal(t, 12000+4000, dash.WeeklySteps)
	assert.Equal(t, 480+160+300+150+100, dash.WeeklyCalories)
	assert.Equal(t, 3, dash.WeeklyWorkouts)

	assert.Equal(t, "Very Active", dash.ActivityLevel)
	assert.Equal(t, models.GoalsResponse{Steps: 10000, Calories: 2000, Workouts: 3}, dash.Goals)

	// 12000/10000 overshoots and caps at 100; calories sit mid-range.
	assert.Equal(t, 100, dash.Progress.Steps)
	assert.Equal(t, 47, dash.Progress.Calories)
	assert.Equal(t, 100, dash.Progress.Workouts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardUnknownUser(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewProgressService(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Dashboard(context.Background(), 99, testNow)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func stepsRows(entries []models.StepsEntry) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "steps", "duration", "calories_burned"})
	for i, e := range entries {
		rows.AddRow(uint(i+1), uint(1), e.Date, e.Steps, e.Duration, e.CaloriesBurned)
	}
	return rows
}

func workoutRows(workouts []models.Workout) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "type", "name", "duration", "intensity", "calories_burned"})
	for i, w := range workouts {
		rows.AddRow(uint(i+1), uint(1), w.Date, string(w.Type), w.Name, w.Duration, string(w.Intensity), w.CaloriesBurned)
	}
	return rows
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStepsUpsertCreates(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1))
	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	entry, created, err := svc.Upsert(context.Background(), 1, UpsertStepsInput{
		Date:     "2025-03-14",
		Steps:    intPtr(10000),
		Duration: intPtr(100),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(7), entry.ID)
	assert.Equal(t, day, entry.Date)
	assert.Equal(t, 10000, entry.Steps)
	// 10000 steps at the 70kg default, pace 100 steps/min.
	assert.Equal(t, 400, entry.CaloriesBurned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsUpsertMissingProfileDefaultsWeight(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	// No profile row at all still derives calories at the reference weight.
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))

	entry, created, err := svc.Upsert(context.Background(), 1, UpsertStepsInput{
		Date:     "2025-03-14",
		Steps:    intPtr(10000),
		Duration: intPtr(100),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 400, entry.CaloriesBurned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsUpsertUpdatesExistingDay(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1))
	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "steps", "duration", "calories_burned"}).
			AddRow(7, 1, day, 4000, 40, 160))
	mock.ExpectExec(`UPDATE "steps_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, created, err := svc.Upsert(context.Background(), 1, UpsertStepsInput{
		Date:     "2025-03-14",
		Steps:    intPtr(10000),
		Duration: intPtr(100),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(7), entry.ID)
	assert.Equal(t, 10000, entry.Steps)
	assert.Equal(t, 400, entry.CaloriesBurned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsUpsertValidation(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	cases := []struct {
		name string
		in   UpsertStepsInput
		want string
	}{
		{"missing fields", UpsertStepsInput{Date: "2025-03-14"}, "Date, steps, and duration are required"},
		{"steps too large", UpsertStepsInput{Date: "2025-03-14", Steps: intPtr(100001), Duration: intPtr(60)}, "Steps must be between 0 and 100,000"},
		{"negative steps", UpsertStepsInput{Date: "2025-03-14", Steps: intPtr(-1), Duration: intPtr(60)}, "Steps must be between 0 and 100,000"},
		{"duration zero", UpsertStepsInput{Date: "2025-03-14", Steps: intPtr(5000), Duration: intPtr(0)}, "Duration must be between 1 and 1440 minutes"},
		{"bad date", UpsertStepsInput{Date: "14/03/2025", Steps: intPtr(5000), Duration: intPtr(60)}, "Invalid date, expected YYYY-MM-DD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Upsert(context.Background(), 1, tc.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.want, verr.Message)
		})
	}
	// None of the rejected inputs may touch storage.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsUpdateNotOwned(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	// Owner-scoped lookup comes back empty for a foreign id.
	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Update(context.Background(), 2, 7, UpdateStepsInput{Steps: intPtr(5000)})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsUpdateRederivesCalories(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "steps_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "steps", "duration", "calories_burned"}).
			AddRow(7, 1, day, 4000, 40, 160))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(userRow(1))
	mock.ExpectExec(`UPDATE "steps_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry, err := svc.Update(context.Background(), 1, 7, UpdateStepsInput{Steps: intPtr(10000), Duration: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, 400, entry.CaloriesBurned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsDeleteMissing(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	mock.ExpectExec(`UPDATE "steps_entries" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsDelete(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewStepsService(db)

	mock.ExpectExec(`UPDATE "steps_entries" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(context.Background(), 1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStepsListFilterRejectsBadRange(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewStepsService(db)

	_, err := svc.List(context.Background(), 1, ListFilter{StartDate: "bogus", EndDate: "2025-03-14"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid startDate, expected YYYY-MM-DD", verr.Message)
}

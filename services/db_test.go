package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wraps gorm around a sqlmock connection. Regexp matching keeps
// expectations readable; SkipDefaultTransaction avoids Begin/Commit noise
// (nothing in the services relies on the implicit transaction).
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

// userRow is a minimal users result with the given id and no profile weight.
func userRow(id uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "weight"}).AddRow(id, nil)
}

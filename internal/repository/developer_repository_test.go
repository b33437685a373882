package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/controltask/controltask-api/internal/models"
)

// openMockDB wires GORM over a sqlmock connection so query shapes can
// be asserted without a real database
func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestDeveloperRepository_Exists_QueriesByID(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewDeveloperRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `developers` WHERE id = ?")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.Exists(42)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeveloperRepository_Exists_MissingRow(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewDeveloperRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `developers` WHERE id = ?")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err := repo.Exists(7)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeveloperRepository_CountTasks_CountsByAssignee(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewDeveloperRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `tasks` WHERE assignee_id = ?")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	count, err := repo.CountTasks(42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeveloperRepository_Delete_HardDeletes(t *testing.T) {
	db, mock := openMockDB(t)
	repo := NewDeveloperRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `developers` WHERE `developers`.`id` = ?")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeveloperRepository_ListActive_SQLite(t *testing.T) {
	db := openTestDB(t)
	repo := NewDeveloperRepository(db)

	seedDeveloper(t, db, "active@example.com")
	inactive := &models.Developer{
		FirstName: "Gone",
		LastName:  "Dev",
		Email:     "inactive@example.com",
		IsActive:  false,
	}
	require.NoError(t, db.Create(inactive).Error)

	devs, err := repo.ListActive()
	require.NoError(t, err)

	require.Len(t, devs, 1)
	assert.Equal(t, "active@example.com", devs[0].Email)
}

func TestDeveloperRepository_ListActiveWithTasks_PreloadsTasks(t *testing.T) {
	db := openTestDB(t)
	repo := NewDeveloperRepository(db)

	dev := seedDeveloper(t, db, "dev@example.com")
	project := seedProject(t, db, "API")
	seedTask(t, db, &models.Task{ProjectID: project.ID, AssigneeID: dev.ID})
	seedTask(t, db, &models.Task{ProjectID: project.ID, AssigneeID: dev.ID})

	devs, err := repo.ListActiveWithTasks()
	require.NoError(t, err)

	require.Len(t, devs, 1)
	assert.Len(t, devs[0].Tasks, 2)
}

package store

import (
	"errors"
	"fmt"
	"testing"

	"taskhub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Team{}, &models.Task{}, &models.Comment{}))
	return db
}

func seedTask(t *testing.T, s *GormTaskStore, title, description string) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      models.TaskStatusOpen,
		DueDate:     "01/10/2026",
	}
	require.NoError(t, s.Create(task))
	return task
}

func TestTaskStoreSentinels(t *testing.T) {
	s := NewTaskStore(newTestDB(t))

	_, err := s.GetByID(1)
	assert.True(t, errors.Is(err, ErrNotFound))

	seedTask(t, s, "Write the onboarding guide", "Draft it")
	err = s.Create(&models.Task{
		Title:       "Write the onboarding guide",
		Description: "Same title again",
		Status:      models.TaskStatusOpen,
		DueDate:     "01/10/2026",
	})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestTaskStoreSearchIsCaseInsensitive(t *testing.T) {
	s := NewTaskStore(newTestDB(t))
	seedTask(t, s, "Upgrade the billing service", "Move to the new API")
	seedTask(t, s, "Rotate credentials", "All BILLING secrets expire soon")

	results, err := s.Search("billing")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = s.Search("rotate")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Rotate credentials", results[0].Title)
}

func TestTaskStoreListByStatus(t *testing.T) {
	s := NewTaskStore(newTestDB(t))
	seedTask(t, s, "Open task number one", "still pending work")
	closed := seedTask(t, s, "Closed task number one", "already done")
	require.NoError(t, s.UpdateFields(closed.ID, map[string]interface{}{"status": models.TaskStatusClosed}))

	status := models.TaskStatusClosed
	results, err := s.List(&status)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, closed.ID, results[0].ID)

	all, err := s.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTaskStoreDeleteRemovesComments(t *testing.T) {
	db := newTestDB(t)
	s := NewTaskStore(db)
	task := seedTask(t, s, "Document the release flow", "Write it down")

	require.NoError(t, s.AddComment(&models.Comment{TaskID: task.ID, AuthorID: 1, Text: "started"}))
	require.NoError(t, s.AddComment(&models.Comment{TaskID: task.ID, AuthorID: 1, Text: "halfway"}))

	require.NoError(t, s.Delete(task.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("task_id = ?", task.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTaskStoreUpdateFields(t *testing.T) {
	s := NewTaskStore(newTestDB(t))
	task := seedTask(t, s, "Tune the query planner", "Slow dashboard queries")

	require.NoError(t, s.UpdateFields(task.ID, map[string]interface{}{"status": models.TaskStatusClosed}))

	reloaded, err := s.GetByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusClosed, reloaded.Status)
	assert.Equal(t, task.Title, reloaded.Title)
}

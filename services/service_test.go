package services

import (
	"fmt"
	"testing"
	"time"

	"taskhub/models"
	"taskhub/notify"
	"taskhub/store"

	"github.com/google/uuid"
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

// fakeSender records dispatched payloads so async delivery is observable.
type fakeSender struct {
	sent chan notify.Payload
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan notify.Payload, 8)}
}

func (f *fakeSender) Send(p notify.Payload) error {
	f.sent <- p
	return nil
}

func (f *fakeSender) wait(t *testing.T) notify.Payload {
	t.Helper()
	select {
	case p := <-f.sent:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return notify.Payload{}
	}
}

func (f *fakeSender) assertNone(t *testing.T) {
	t.Helper()
	select {
	case p := <-f.sent:
		t.Fatalf("unexpected notification to %s", p.To)
	case <-time.After(100 * time.Millisecond):
	}
}

type taskFixture struct {
	svc    *TaskService
	users  store.UserStore
	sender *fakeSender
	db     *gorm.DB
}

func newTaskFixture(t *testing.T) taskFixture {
	t.Helper()

	db := newTestDB(t)
	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	sender := newFakeSender()
	dispatcher := notify.NewDispatcher(sender, "noreply@taskhub.local")

	return taskFixture{
		svc:    NewTaskService(tasks, users, dispatcher),
		users:  users,
		sender: sender,
		db:     db,
	}
}

func (f taskFixture) registerUser(t *testing.T, first, last, email string) *models.User {
	t.Helper()
	user := &models.User{FirstName: first, LastName: last, Email: email, Password: "secret-hash"}
	require.NoError(t, f.users.Create(user))
	return user
}

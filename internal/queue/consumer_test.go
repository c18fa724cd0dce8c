package queue

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/database"
	"github.com/skyops/airline-backoffice/internal/repository"
)

func newNotificationRepo(t *testing.T) *repository.NotificationRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Init(context.Background(), db))
	return repository.NewNotificationRepo(db)
}

func TestHandleMessage(t *testing.T) {
	dir := t.TempDir()
	// booking.log lands relative to the working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	notifs := newNotificationRepo(t)

	body := []byte(`{
		"ticket_id": "tkt-1",
		"passenger_id": 1,
		"user_id": 7,
		"passenger_name": "John",
		"flight_id": 2,
		"flight_number": "AI101",
		"destination": "New York",
		"departure": "2024-12-15 08:00:00",
		"amount": 450,
		"booked_at": "2024-12-01 12:00:00"
	}`)
	require.NoError(t, handleMessage(notifs, body))

	items, err := notifs.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Message, "tkt-1")
	assert.Contains(t, items[0].Message, "AI101")
	assert.Contains(t, items[0].Message, "New York")
	assert.Contains(t, items[0].Message, "450.00")

	logData, err := os.ReadFile(filepath.Join(dir, "logs", "booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "ticket_id=tkt-1")
	assert.Contains(t, string(logData), "user_id=7")
	assert.Contains(t, string(logData), "amount=450.00")
}

func TestHandleMessageBadPayload(t *testing.T) {
	notifs := newNotificationRepo(t)

	assert.Error(t, handleMessage(notifs, []byte("not json")))

	items, err := notifs.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, items)
}

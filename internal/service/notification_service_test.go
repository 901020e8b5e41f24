package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ituna-edu/portal-api/internal/models"
)

type mockNotificationStore struct {
	notifications []models.Notification
	markCalls     int
}

func (m *mockNotificationStore) Notifications(_ context.Context) []models.Notification {
	return m.notifications
}

func (m *mockNotificationStore) MarkAllNotificationsRead(_ context.Context) error {
	m.markCalls++
	for i := range m.notifications {
		m.notifications[i].Read = true
	}
	return nil
}

func TestNotificationListCountsUnread(t *testing.T) {
	repo := &mockNotificationStore{notifications: []models.Notification{
		{ID: 1, Message: "New grade posted", Read: false},
		{ID: 2, Message: "Assignment due", Read: true},
		{ID: 3, Message: "Event reminder", Read: false},
	}}
	svc := NewNotificationService(repo, nil)

	notifications, unread := svc.List(context.Background())
	require.Len(t, notifications, 3)
	assert.Equal(t, 2, unread)
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := &mockNotificationStore{notifications: []models.Notification{
		{ID: 1, Message: "New grade posted", Read: false},
		{ID: 2, Message: "Assignment due", Read: false},
	}}
	svc := NewNotificationService(repo, nil)

	require.NoError(t, svc.MarkAllRead(context.Background()))
	assert.Equal(t, 1, repo.markCalls)

	_, unread := svc.List(context.Background())
	assert.Zero(t, unread)
}

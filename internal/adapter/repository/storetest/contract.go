// Package storetest holds the behavior every Store variant must share. Each
// variant's tests call Run with a factory returning an empty store.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// Factory returns an empty store for one subtest
type Factory func(t *testing.T) repositories.Store

// Run exercises the full repository contract against stores built by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("meetings", func(t *testing.T) { testMeetings(t, newStore(t)) })
	t.Run("meeting order", func(t *testing.T) { testMeetingOrder(t, newStore(t)) })
	t.Run("decisions", func(t *testing.T) { testDecisions(t, newStore(t)) })
	t.Run("action items", func(t *testing.T) { testActionItems(t, newStore(t)) })
	t.Run("participants", func(t *testing.T) { testParticipants(t, newStore(t)) })
	t.Run("notifications", func(t *testing.T) { testNotifications(t, newStore(t)) })
}

func createMeeting(t *testing.T, store repositories.Store, title string) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting(title, "April 20, 2025", "30 minutes")
	require.NoError(t, store.Meetings().Create(context.Background(), m))
	return m
}

func testUsers(t *testing.T, store repositories.Store) {
	ctx := context.Background()

	jane := &entities.User{Username: "jane", Password: "secret", Name: "Jane Smith"}
	require.NoError(t, store.Users().Create(ctx, jane))
	assert.NotZero(t, jane.ID)

	john := &entities.User{Username: "john", Password: "secret", Name: "John Doe"}
	require.NoError(t, store.Users().Create(ctx, john))
	assert.Greater(t, john.ID, jane.ID)

	err := store.Users().Create(ctx, &entities.User{Username: "jane", Password: "other"})
	assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)

	err = store.Users().Create(ctx, &entities.User{Password: "x"})
	assert.ErrorIs(t, err, entities.ErrInvalidUsername)

	found, err := store.Users().FindByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, john.ID, found.ID)
	assert.Equal(t, "secret", found.Password)

	_, err = store.Users().FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = store.Users().FindByID(ctx, john.ID+100)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jane", users[0].Username)
	assert.Equal(t, "john", users[1].Username)
}

func testMeetings(t *testing.T, store repositories.Store) {
	ctx := context.Background()

	m := &entities.Meeting{Title: "Weekly sync", Date: "April 20, 2025", Duration: "30 minutes"}
	require.NoError(t, store.Meetings().Create(ctx, m))
	assert.NotZero(t, m.ID)
	assert.Equal(t, entities.MeetingStatusProcessing, m.Status)
	assert.False(t, m.CreatedAt.IsZero())

	t.Run("find", func(t *testing.T) {
		found, err := store.Meetings().FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Weekly sync", found.Title)
		assert.Nil(t, found.AudioURL)

		_, err = store.Meetings().FindByID(ctx, m.ID+100)
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		status := entities.MeetingStatusCompleted
		summary := "Shipped it"
		updated, err := store.Meetings().Update(ctx, m.ID, entities.MeetingPatch{Status: &status, Summary: &summary})
		require.NoError(t, err)
		assert.Equal(t, entities.MeetingStatusCompleted, updated.Status)
		assert.Equal(t, "Shipped it", updated.Summary)
		assert.Equal(t, "Weekly sync", updated.Title)

		found, err := store.Meetings().FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.MeetingStatusCompleted, found.Status)
		assert.Equal(t, "30 minutes", found.Duration)
	})

	t.Run("update unknown", func(t *testing.T) {
		title := "nope"
		_, err := store.Meetings().Update(ctx, m.ID+100, entities.MeetingPatch{Title: &title})
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})

	t.Run("topics", func(t *testing.T) {
		require.NoError(t, store.Meetings().SetTopics(ctx, m.ID, []string{"launch", "budget"}))

		found, err := store.Meetings().FindByID(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"launch", "budget"}, []string(found.Topics))

		// setting the same topics again still finds the row
		require.NoError(t, store.Meetings().SetTopics(ctx, m.ID, []string{"launch", "budget"}))

		err = store.Meetings().SetTopics(ctx, m.ID+100, []string{"x"})
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})
}

func testMeetingOrder(t *testing.T, store repositories.Store) {
	ctx := context.Background()

	first := createMeeting(t, store, "First")
	second := createMeeting(t, store, "Second")
	third := createMeeting(t, store, "Third")

	meetings, err := store.Meetings().List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, []int{third.ID, second.ID, first.ID}, []int{meetings[0].ID, meetings[1].ID, meetings[2].ID})
}

func testDecisions(t *testing.T, store repositories.Store) {
	ctx := context.Background()
	a := createMeeting(t, store, "A")
	b := createMeeting(t, store, "B")

	first := &entities.Decision{MeetingID: a.ID, Text: "Ship on Friday"}
	require.NoError(t, store.Decisions().Create(ctx, first))
	require.NoError(t, store.Decisions().Create(ctx, &entities.Decision{MeetingID: b.ID, Text: "Hire a designer"}))
	require.NoError(t, store.Decisions().Create(ctx, &entities.Decision{MeetingID: a.ID, Text: "Freeze scope"}))

	found, err := store.Decisions().FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ship on Friday", found.Text)

	_, err = store.Decisions().FindByID(ctx, first.ID+100)
	assert.ErrorIs(t, err, entities.ErrDecisionNotFound)

	list, err := store.Decisions().ListByMeeting(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ship on Friday", list[0].Text)
	assert.Equal(t, "Freeze scope", list[1].Text)

	none, err := store.Decisions().ListByMeeting(ctx, b.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testActionItems(t *testing.T, store repositories.Store) {
	ctx := context.Background()
	a := createMeeting(t, store, "A")
	b := createMeeting(t, store, "B")

	item := &entities.ActionItem{MeetingID: a.ID, Task: "Write the brief", Assignee: "PM", DueDate: "April 25, 2025"}
	require.NoError(t, store.ActionItems().Create(ctx, item))
	assert.Equal(t, entities.ActionItemStatusNotStarted, item.Status)

	done := &entities.ActionItem{MeetingID: b.ID, Task: "Book the room", Assignee: "Ops", DueDate: "April 21, 2025", Status: "Completed", Completed: true}
	require.NoError(t, store.ActionItems().Create(ctx, done))

	t.Run("list", func(t *testing.T) {
		all, err := store.ActionItems().List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, item.ID, all[0].ID)
		assert.True(t, all[1].Completed)
		assert.Equal(t, "Completed", all[1].Status)

		byMeeting, err := store.ActionItems().ListByMeeting(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, byMeeting, 1)
		assert.Equal(t, "Write the brief", byMeeting[0].Task)
	})

	t.Run("partial update", func(t *testing.T) {
		completed := true
		updated, err := store.ActionItems().Update(ctx, item.ID, entities.ActionItemPatch{Completed: &completed})
		require.NoError(t, err)
		assert.True(t, updated.Completed)
		assert.Equal(t, entities.ActionItemStatusNotStarted, updated.Status)
		assert.Equal(t, "PM", updated.Assignee)

		found, err := store.ActionItems().FindByID(ctx, item.ID)
		require.NoError(t, err)
		assert.True(t, found.Completed)
		assert.Equal(t, "Write the brief", found.Task)
	})

	t.Run("clearing a flag", func(t *testing.T) {
		completed := false
		updated, err := store.ActionItems().Update(ctx, done.ID, entities.ActionItemPatch{Completed: &completed})
		require.NoError(t, err)
		assert.False(t, updated.Completed)

		found, err := store.ActionItems().FindByID(ctx, done.ID)
		require.NoError(t, err)
		assert.False(t, found.Completed)
	})

	t.Run("move to another meeting", func(t *testing.T) {
		_, err := store.ActionItems().Update(ctx, item.ID, entities.ActionItemPatch{MeetingID: &b.ID})
		require.NoError(t, err)

		byMeeting, err := store.ActionItems().ListByMeeting(ctx, b.ID)
		require.NoError(t, err)
		assert.Len(t, byMeeting, 2)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := store.ActionItems().FindByID(ctx, done.ID+100)
		assert.ErrorIs(t, err, entities.ErrActionItemNotFound)

		task := "x"
		_, err = store.ActionItems().Update(ctx, done.ID+100, entities.ActionItemPatch{Task: &task})
		assert.ErrorIs(t, err, entities.ErrActionItemNotFound)
	})
}

func testParticipants(t *testing.T, store repositories.Store) {
	ctx := context.Background()
	m := createMeeting(t, store, "Planning")

	alex := &entities.User{Username: "alex", Password: "secret", Name: "Alex Johnson"}
	require.NoError(t, store.Users().Create(ctx, alex))

	fromUser := entities.NewUserParticipant(m.ID, alex.ID)
	require.NoError(t, store.Participants().Create(ctx, fromUser))
	assert.Equal(t, "Alex Johnson", fromUser.Name)

	require.NoError(t, store.Participants().Create(ctx, entities.NewUserParticipant(m.ID, alex.ID+100)))
	require.NoError(t, store.Participants().Create(ctx, entities.NewNamedParticipant(m.ID, "Engineer_1")))

	list, err := store.Participants().ListByMeeting(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Alex Johnson", list[0].Name)
	require.NotNil(t, list[0].UserID)
	assert.Equal(t, alex.ID, *list[0].UserID)

	assert.Empty(t, list[1].Name)
	assert.Equal(t, "Engineer_1", list[2].Name)
	assert.Nil(t, list[2].UserID)

	other, err := store.Participants().ListByMeeting(ctx, m.ID+100)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func testNotifications(t *testing.T, store repositories.Store) {
	ctx := context.Background()

	n := &entities.Notification{UserID: 1, Title: "Meeting analysis complete", Description: "Sync is ready", Date: "Just now"}
	require.NoError(t, store.Notifications().Create(ctx, n))
	require.NoError(t, store.Notifications().Create(ctx, &entities.Notification{UserID: 2, Title: "Other", Description: "x", Date: "1 hour ago"}))
	require.NoError(t, store.Notifications().Create(ctx, &entities.Notification{UserID: 1, Title: "Older", Description: "y", Date: "2 days ago", Read: true}))

	t.Run("list by user", func(t *testing.T) {
		mine, err := store.Notifications().ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, n.ID, mine[0].ID)
		assert.False(t, mine[0].Read)
		assert.True(t, mine[1].Read)

		all, err := store.Notifications().List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		first, err := store.Notifications().MarkRead(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, first.Read)

		second, err := store.Notifications().MarkRead(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, second.Read)
		assert.Equal(t, first.Title, second.Title)

		found, err := store.Notifications().FindByID(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, found.Read)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := store.Notifications().MarkRead(ctx, n.ID+100)
		assert.ErrorIs(t, err, entities.ErrNotificationNotFound)

		_, err = store.Notifications().FindByID(ctx, n.ID+100)
		assert.ErrorIs(t, err, entities.ErrNotificationNotFound)
	})
}

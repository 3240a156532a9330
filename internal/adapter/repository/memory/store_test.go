package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/storetest"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repositories.Store {
		return New()
	})
}

func TestStore_CountersStartAtOne(t *testing.T) {
	ctx := context.Background()
	s := New()

	u := &entities.User{Username: "johndoe", Name: "John Doe"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.Equal(t, 1, u.ID)

	m := entities.NewMeeting("Standup", "April 19, 2025", "15 minutes")
	require.NoError(t, s.Meetings().Create(ctx, m))
	assert.Equal(t, 1, m.ID)

	m2 := entities.NewMeeting("Retro", "April 20, 2025", "30 minutes")
	require.NoError(t, s.Meetings().Create(ctx, m2))
	assert.Equal(t, 2, m2.ID)

	d := &entities.Decision{MeetingID: m.ID, Text: "Ship it"}
	require.NoError(t, s.Decisions().Create(ctx, d))
	assert.Equal(t, 1, d.ID)
}

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.Users().Create(ctx, &entities.User{Username: "janesmith", Name: "Jane Smith"}))

	t.Run("duplicate username", func(t *testing.T) {
		err := s.Users().Create(ctx, &entities.User{Username: "janesmith"})
		assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)
	})

	t.Run("empty username", func(t *testing.T) {
		err := s.Users().Create(ctx, &entities.User{})
		assert.ErrorIs(t, err, entities.ErrInvalidUsername)
	})

	t.Run("find by username", func(t *testing.T) {
		u, err := s.Users().FindByUsername(ctx, "janesmith")
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", u.Name)

		_, err = s.Users().FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.Users().FindByID(ctx, 42)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})
}

func TestStore_MeetingsNewestFirst(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)
	clock := now
	s := New(WithClock(func() time.Time { return clock }))

	first := entities.NewMeeting("First meeting", "April 18, 2025", "10 minutes")
	require.NoError(t, s.Meetings().Create(ctx, first))

	clock = now.Add(time.Hour)
	second := entities.NewMeeting("Second meeting", "April 19, 2025", "10 minutes")
	require.NoError(t, s.Meetings().Create(ctx, second))

	// same timestamp as second; the higher id wins
	third := entities.NewMeeting("Third meeting", "April 19, 2025", "10 minutes")
	require.NoError(t, s.Meetings().Create(ctx, third))

	meetings, err := s.Meetings().List(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, []int{3, 2, 1}, []int{meetings[0].ID, meetings[1].ID, meetings[2].ID})
}

func TestStore_MeetingUpdate(t *testing.T) {
	ctx := context.Background()
	s := New(WithClock(fixedClock(time.Unix(0, 0))))

	m := entities.NewMeeting("Planning", "April 22, 2025", "45 minutes")
	require.NoError(t, s.Meetings().Create(ctx, m))
	assert.Equal(t, entities.MeetingStatusProcessing, m.Status)

	status := entities.MeetingStatusCompleted
	summary := "done"
	updated, err := s.Meetings().Update(ctx, m.ID, entities.MeetingPatch{Status: &status, Summary: &summary})
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusCompleted, updated.Status)
	assert.Equal(t, "done", updated.Summary)
	assert.Equal(t, "Planning", updated.Title)

	_, err = s.Meetings().Update(ctx, 99, entities.MeetingPatch{Summary: &summary})
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)

	require.NoError(t, s.Meetings().SetTopics(ctx, m.ID, []string{"budget"}))
	got, err := s.Meetings().FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"budget"}, []string(got.Topics))

	assert.ErrorIs(t, s.Meetings().SetTopics(ctx, 99, nil), entities.ErrMeetingNotFound)
}

func TestStore_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	m := entities.NewMeeting("Planning", "April 22, 2025", "45 minutes")
	require.NoError(t, s.Meetings().Create(ctx, m))

	got, err := s.Meetings().FindByID(ctx, m.ID)
	require.NoError(t, err)
	got.Title = "changed"

	again, err := s.Meetings().FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Planning", again.Title)
}

func TestStore_ActionItems(t *testing.T) {
	ctx := context.Background()
	s := New()

	a := &entities.ActionItem{MeetingID: 1, Task: "Write tests", Assignee: "QA Team", DueDate: "April 25, 2025"}
	require.NoError(t, s.ActionItems().Create(ctx, a))
	assert.Equal(t, entities.ActionItemStatusNotStarted, a.Status)
	assert.False(t, a.Completed)

	require.NoError(t, s.ActionItems().Create(ctx, entities.NewActionItem(2, "Other", "PM", "April 26, 2025")))

	byMeeting, err := s.ActionItems().ListByMeeting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byMeeting, 1)
	assert.Equal(t, "Write tests", byMeeting[0].Task)

	all, err := s.ActionItems().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	done := true
	updated, err := s.ActionItems().Update(ctx, a.ID, entities.ActionItemPatch{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Write tests", updated.Task)

	_, err = s.ActionItems().Update(ctx, 99, entities.ActionItemPatch{Completed: &done})
	assert.ErrorIs(t, err, entities.ErrActionItemNotFound)
}

func TestStore_ParticipantNameResolvedAtWrite(t *testing.T) {
	ctx := context.Background()
	s := New()

	u := &entities.User{Username: "alexjohnson", Name: "Alex Johnson"}
	require.NoError(t, s.Users().Create(ctx, u))

	require.NoError(t, s.Participants().Create(ctx, entities.NewUserParticipant(1, u.ID)))
	require.NoError(t, s.Participants().Create(ctx, entities.NewNamedParticipant(1, "QA")))
	require.NoError(t, s.Participants().Create(ctx, entities.NewUserParticipant(1, 77)))

	participants, err := s.Participants().ListByMeeting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, "Alex Johnson", participants[0].Name)
	require.NotNil(t, participants[0].UserID)
	assert.Equal(t, u.ID, *participants[0].UserID)
	assert.Equal(t, "QA", participants[1].Name)
	assert.Equal(t, "", participants[2].Name)
}

func TestStore_Notifications(t *testing.T) {
	ctx := context.Background()
	s := New()

	n := &entities.Notification{UserID: 1, Title: "Meeting summary available", Date: "2 hours ago"}
	require.NoError(t, s.Notifications().Create(ctx, n))
	require.NoError(t, s.Notifications().Create(ctx, &entities.Notification{UserID: 2, Title: "Other", Date: "Just now"}))

	mine, err := s.Notifications().ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	t.Run("mark read is idempotent", func(t *testing.T) {
		first, err := s.Notifications().MarkRead(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, first.Read)

		second, err := s.Notifications().MarkRead(ctx, n.ID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.Notifications().MarkRead(ctx, 99)
		assert.ErrorIs(t, err, entities.ErrNotificationNotFound)
	})
}

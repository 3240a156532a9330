package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/memory"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestDemoFixture(t *testing.T) {
	f, err := Demo()
	require.NoError(t, err)

	assert.Len(t, f.Users, 3)
	assert.Len(t, f.Meetings, 3)
	assert.Len(t, f.Notifications, 2)
	assert.Equal(t, "password123", f.Users[0].Password)
	assert.Len(t, f.Meetings[2].Decisions, 4)
	assert.Len(t, f.Meetings[2].Participants, 8)
}

func TestLoadDemo(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, LoadDemo(ctx, store, nil))

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "johndoe", users[0].Username)

	roadmap, err := store.Meetings().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Product Roadmap Discussion", roadmap.Title)
	assert.Equal(t, entities.MeetingStatusAnalyzed, roadmap.Status)

	items, err := store.ActionItems().ListByMeeting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[1].Completed)
	assert.Equal(t, "Completed", items[1].Status)

	participants, err := store.Participants().ListByMeeting(ctx, 1)
	require.NoError(t, err)
	require.Len(t, participants, 3)
	assert.Equal(t, "John Doe", participants[0].Name)

	sprint, err := store.Meetings().FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusCompleted, sprint.Status)
	assert.Contains(t, sprint.Transcription, "PM: Alright folks")

	jane, err := store.Notifications().ListByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, jane, 1)
	assert.Equal(t, "New action item assigned", jane[0].Title)
	assert.False(t, jane[0].Read)
}

func TestLoadDemo_Twice(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, LoadDemo(ctx, store, nil))
	require.NoError(t, LoadDemo(ctx, store, nil))

	users, err := store.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	meetings, err := store.Meetings().List(ctx)
	require.NoError(t, err)
	assert.Len(t, meetings, 3)

	notifications, err := store.Notifications().List(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestLoad_UnknownUser(t *testing.T) {
	f, err := Parse([]byte(`
notifications:
  - user: ghost
    title: Hello
    date: Just now
`))
	require.NoError(t, err)

	err = Load(context.Background(), memory.New(), f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

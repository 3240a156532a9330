package meeting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/memory"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository/seed"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) PublishNotification(eventType string, n *entities.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("cache down")
}
func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}
func (failingCache) Delete(context.Context, ...string) error { return errors.New("cache down") }

func newSeededService(t *testing.T, c ProjectionCache, pub NotificationPublisher) (*MeetingService, *memory.Store) {
	t.Helper()
	store := memory.New()
	require.NoError(t, seed.LoadDemo(context.Background(), store, nil))
	return NewMeetingService(store, c, time.Minute, pub, nil), store
}

func TestGetMeeting_Details(t *testing.T) {
	svc, _ := newSeededService(t, nil, nil)
	ctx := context.Background()

	t.Run("user participants resolve to names", func(t *testing.T) {
		m, err := svc.GetMeeting(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Product Roadmap Discussion", m.Title)
		assert.Len(t, m.Decisions, 3)
		assert.Len(t, m.ActionItems, 3)
		assert.Equal(t, []string{"John Doe", "Jane Smith", "Alex Johnson"}, m.Participants)
	})

	t.Run("named participants", func(t *testing.T) {
		m, err := svc.GetMeeting(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"PM", "Engineer_1", "Engineer_2", "QA", "Designer", "Product Lead", "Marketing", "Data"}, m.Participants)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetMeeting(ctx, 99)
		assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
	})
}

func TestGetMeeting_FiltersUnresolvedParticipants(t *testing.T) {
	svc, _ := newSeededService(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.AddParticipant(ctx, entities.NewUserParticipant(2, 404)))

	m, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Jane Smith", "Alex Johnson"}, m.Participants)
}

func TestGetMeeting_EmptyMeetingHasEmptyLists(t *testing.T) {
	svc := NewMeetingService(memory.New(), nil, 0, nil, nil)
	ctx := context.Background()

	created, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Empty", Date: "April 1, 2025", Duration: "5 minutes"})
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusProcessing, created.Status)
	assert.Equal(t, "", created.Summary)

	m, err := svc.GetMeeting(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, m.Decisions)
	assert.NotNil(t, m.ActionItems)
	assert.NotNil(t, m.Participants)
}

func TestListMeetings_NewestFirst(t *testing.T) {
	svc, _ := newSeededService(t, nil, nil)
	ctx := context.Background()

	created, err := svc.CreateMeeting(ctx, CreateMeetingInput{Title: "Later meeting", Date: "April 23, 2025", Duration: "10 minutes"})
	require.NoError(t, err)

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, meetings, 4)
	assert.Equal(t, created.ID, meetings[0].ID)
}

func TestCreateMeeting_InvalidStatus(t *testing.T) {
	svc := NewMeetingService(memory.New(), nil, 0, nil, nil)
	_, err := svc.CreateMeeting(context.Background(), CreateMeetingInput{Title: "x", Status: "Archived"})
	assert.ErrorIs(t, err, entities.ErrInvalidMeetingStatus)
}

func TestProjectionCache_InvalidatedOnWrites(t *testing.T) {
	store := cache.NewMemoryStore(time.Hour)
	defer store.Close()

	svc, _ := newSeededService(t, store, nil)
	ctx := context.Background()

	first, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	require.Len(t, first.Decisions, 2)
	_, cached, _ := store.Get(ctx, detailsKey(2))
	require.True(t, cached)

	_, err = svc.CreateDecision(ctx, CreateDecisionInput{MeetingID: 2, Text: "Adopt async standups"})
	require.NoError(t, err)
	_, cached, _ = store.Get(ctx, detailsKey(2))
	assert.False(t, cached, "decision create must drop the projection")

	second, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Decisions, 3)

	title := "Renamed standup"
	_, err = svc.UpdateMeeting(ctx, 2, entities.MeetingPatch{Title: &title})
	require.NoError(t, err)

	third, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Renamed standup", third.Title)
}

func TestProjectionCache_MovedActionItemInvalidatesBoth(t *testing.T) {
	store := cache.NewMemoryStore(time.Hour)
	defer store.Close()

	svc, _ := newSeededService(t, store, nil)
	ctx := context.Background()

	_, err := svc.GetMeeting(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetMeeting(ctx, 2)
	require.NoError(t, err)

	target := 2
	_, err = svc.UpdateActionItem(ctx, 1, entities.ActionItemPatch{MeetingID: &target})
	require.NoError(t, err)

	one, err := svc.GetMeeting(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, one.ActionItems, 2)

	two, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two.ActionItems, 3)
}

// interleavedStore runs a hook once, right after decisions are read
type interleavedStore struct {
	repositories.Store
	decisions *interleavedDecisions
}

func (s interleavedStore) Decisions() repositories.DecisionRepository { return s.decisions }

type interleavedDecisions struct {
	repositories.DecisionRepository
	afterList func()
}

func (d *interleavedDecisions) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Decision, error) {
	list, err := d.DecisionRepository.ListByMeeting(ctx, meetingID)
	if hook := d.afterList; hook != nil {
		d.afterList = nil
		hook()
	}
	return list, err
}

// interleavedCache runs a hook once, just before a value is stored
type interleavedCache struct {
	*cache.MemoryStore
	beforeSet func()
}

func (c *interleavedCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if hook := c.beforeSet; hook != nil {
		c.beforeSet = nil
		hook()
	}
	return c.MemoryStore.Set(ctx, key, value, ttl)
}

func TestProjectionCache_WriteDuringReadIsNotCached(t *testing.T) {
	ctx := context.Background()
	projections := cache.NewMemoryStore(time.Hour)
	defer projections.Close()

	base := memory.New()
	require.NoError(t, seed.LoadDemo(ctx, base, nil))
	decisions := &interleavedDecisions{DecisionRepository: base.Decisions()}
	svc := NewMeetingService(interleavedStore{Store: base, decisions: decisions}, projections, time.Hour, nil, nil)

	decisions.afterList = func() {
		_, err := svc.CreateActionItem(ctx, CreateActionItemInput{MeetingID: 2, Task: "Late task", Assignee: "QA", DueDate: "April 28, 2025"})
		require.NoError(t, err)
	}

	_, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	_, cached, _ := projections.Get(ctx, detailsKey(2))
	assert.False(t, cached)

	m, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, m.ActionItems, 3)
}

func TestProjectionCache_WriteBeforeSetIsDropped(t *testing.T) {
	ctx := context.Background()
	projections := &interleavedCache{MemoryStore: cache.NewMemoryStore(time.Hour)}
	defer projections.Close()

	svc, _ := newSeededService(t, projections, nil)

	// the write lands after the generation check but before the entry is stored
	projections.beforeSet = func() {
		_, err := svc.CreateDecision(ctx, CreateDecisionInput{MeetingID: 2, Text: "Adopt async standups"})
		require.NoError(t, err)
	}

	_, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	_, cached, _ := projections.Get(ctx, detailsKey(2))
	assert.False(t, cached)

	m, err := svc.GetMeeting(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, m.Decisions, 3)
}

func TestProjectionCache_FailuresFallBackToStore(t *testing.T) {
	svc, _ := newSeededService(t, failingCache{}, nil)
	ctx := context.Background()

	m, err := svc.GetMeeting(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Product Roadmap Discussion", m.Title)

	_, err = svc.CreateDecision(ctx, CreateDecisionInput{MeetingID: 1, Text: "Still works"})
	assert.NoError(t, err)
}

func TestActionItems_RoundTrip(t *testing.T) {
	svc := NewMeetingService(memory.New(), nil, 0, nil, nil)
	ctx := context.Background()

	created, err := svc.CreateActionItem(ctx, CreateActionItemInput{
		MeetingID: 1,
		Task:      "Book the venue",
		Assignee:  "Marketing Team",
		DueDate:   "April 27, 2025",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ActionItemStatusNotStarted, created.Status)

	items, err := svc.ListActionItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, created, items[0])

	_, err = svc.UpdateActionItem(ctx, 42, entities.ActionItemPatch{})
	assert.ErrorIs(t, err, entities.ErrActionItemNotFound)
}

func TestNotifications(t *testing.T) {
	pub := &recordingPublisher{}
	svc, _ := newSeededService(t, nil, pub)
	ctx := context.Background()

	for _, date := range []string{"3 days ago", "2 hours ago", "Just now", "1 week ago", "45 minutes ago"} {
		_, err := svc.CreateNotification(ctx, CreateNotificationInput{UserID: 3, Title: date, Date: date})
		require.NoError(t, err)
	}

	list, err := svc.ListNotifications(ctx, 3)
	require.NoError(t, err)

	titles := make([]string, 0, len(list))
	for _, n := range list {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"Just now", "45 minutes ago", "2 hours ago", "3 days ago", "1 week ago"}, titles)

	t.Run("mark read twice", func(t *testing.T) {
		first, err := svc.MarkNotificationRead(ctx, list[0].ID)
		require.NoError(t, err)
		assert.True(t, first.Read)

		second, err := svc.MarkNotificationRead(ctx, list[0].ID)
		require.NoError(t, err)
		assert.True(t, second.Read)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.MarkNotificationRead(ctx, 999)
		assert.ErrorIs(t, err, entities.ErrNotificationNotFound)
	})

	pub.mu.Lock()
	defer pub.mu.Unlock()
	assert.Len(t, pub.events, 7)
	assert.Equal(t, EventNotificationCreated, pub.events[0])
	assert.Equal(t, EventNotificationRead, pub.events[6])
}

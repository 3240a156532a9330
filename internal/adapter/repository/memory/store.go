// Package memory is the in-process Store variant. Data lives for the lifetime
// of the process; IDs are per-entity counters starting at 1 and never reused.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// Option configures a Store
type Option func(*Store)

// WithClock overrides the clock used for Meeting.CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store keeps every entity in maps guarded by a single RWMutex
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users         map[int]entities.User
	meetings      map[int]entities.Meeting
	decisions     map[int]entities.Decision
	actionItems   map[int]entities.ActionItem
	participants  map[int]entities.Participant
	notifications map[int]entities.Notification

	nextUserID         int
	nextMeetingID      int
	nextDecisionID     int
	nextActionItemID   int
	nextParticipantID  int
	nextNotificationID int
}

var _ repositories.Store = (*Store)(nil)

// New creates an empty in-memory store
func New(opts ...Option) *Store {
	s := &Store{
		now:                time.Now,
		users:              make(map[int]entities.User),
		meetings:           make(map[int]entities.Meeting),
		decisions:          make(map[int]entities.Decision),
		actionItems:        make(map[int]entities.ActionItem),
		participants:       make(map[int]entities.Participant),
		notifications:      make(map[int]entities.Notification),
		nextUserID:         1,
		nextMeetingID:      1,
		nextDecisionID:     1,
		nextActionItemID:   1,
		nextParticipantID:  1,
		nextNotificationID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Users() repositories.UserRepository                 { return userRepo{s} }
func (s *Store) Meetings() repositories.MeetingRepository           { return meetingRepo{s} }
func (s *Store) Decisions() repositories.DecisionRepository         { return decisionRepo{s} }
func (s *Store) ActionItems() repositories.ActionItemRepository     { return actionItemRepo{s} }
func (s *Store) Participants() repositories.ParticipantRepository   { return participantRepo{s} }
func (s *Store) Notifications() repositories.NotificationRepository { return notificationRepo{s} }

// Close is a no-op for the in-memory store
func (s *Store) Close() error { return nil }

// sortedValues returns the map values ordered by the given id accessor
func sortedValues[T any](m map[int]T, keep func(T) bool) []*T {
	ids := make([]int, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		v := m[id]
		out = append(out, &v)
	}
	return out
}

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, user *entities.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return entities.ErrUserAlreadyExists
		}
	}

	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r userRepo) FindByID(ctx context.Context, id int) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (r userRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range sortedValues(r.s.users, nil) {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r userRepo) List(ctx context.Context) ([]*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.users, nil), nil
}

type meetingRepo struct{ s *Store }

func (r meetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	meeting.ID = r.s.nextMeetingID
	r.s.nextMeetingID++
	if meeting.Status == "" {
		meeting.Status = entities.MeetingStatusProcessing
	}
	meeting.CreatedAt = r.s.now()
	r.s.meetings[meeting.ID] = *meeting
	return nil
}

func (r meetingRepo) FindByID(ctx context.Context, id int) (*entities.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return &m, nil
}

func (r meetingRepo) Update(ctx context.Context, id int, patch entities.MeetingPatch) (*entities.Meeting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	patch.Apply(&m)
	r.s.meetings[id] = m
	return &m, nil
}

func (r meetingRepo) SetTopics(ctx context.Context, id int, topics []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.meetings[id]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	m.Topics = append([]string(nil), topics...)
	r.s.meetings[id] = m
	return nil
}

func (r meetingRepo) List(ctx context.Context) ([]*entities.Meeting, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	meetings := sortedValues(r.s.meetings, nil)
	sort.SliceStable(meetings, func(i, j int) bool {
		a, b := meetings[i], meetings[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return meetings, nil
}

type decisionRepo struct{ s *Store }

func (r decisionRepo) Create(ctx context.Context, decision *entities.Decision) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	decision.ID = r.s.nextDecisionID
	r.s.nextDecisionID++
	r.s.decisions[decision.ID] = *decision
	return nil
}

func (r decisionRepo) FindByID(ctx context.Context, id int) (*entities.Decision, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.decisions[id]
	if !ok {
		return nil, entities.ErrDecisionNotFound
	}
	return &d, nil
}

func (r decisionRepo) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Decision, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.decisions, func(d entities.Decision) bool {
		return d.MeetingID == meetingID
	}), nil
}

type actionItemRepo struct{ s *Store }

func (r actionItemRepo) Create(ctx context.Context, item *entities.ActionItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item.ID = r.s.nextActionItemID
	r.s.nextActionItemID++
	if item.Status == "" {
		item.Status = entities.ActionItemStatusNotStarted
	}
	r.s.actionItems[item.ID] = *item
	return nil
}

func (r actionItemRepo) FindByID(ctx context.Context, id int) (*entities.ActionItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.actionItems[id]
	if !ok {
		return nil, entities.ErrActionItemNotFound
	}
	return &a, nil
}

func (r actionItemRepo) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.ActionItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.actionItems, func(a entities.ActionItem) bool {
		return a.MeetingID == meetingID
	}), nil
}

func (r actionItemRepo) List(ctx context.Context) ([]*entities.ActionItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.actionItems, nil), nil
}

func (r actionItemRepo) Update(ctx context.Context, id int, patch entities.ActionItemPatch) (*entities.ActionItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.actionItems[id]
	if !ok {
		return nil, entities.ErrActionItemNotFound
	}
	patch.Apply(&a)
	r.s.actionItems[id] = a
	return &a, nil
}

type participantRepo struct{ s *Store }

func (r participantRepo) Create(ctx context.Context, participant *entities.Participant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if participant.UserID != nil && participant.Name == "" {
		if u, ok := r.s.users[*participant.UserID]; ok {
			participant.Name = u.Name
		}
	}

	participant.ID = r.s.nextParticipantID
	r.s.nextParticipantID++
	r.s.participants[participant.ID] = *participant
	return nil
}

func (r participantRepo) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Participant, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.participants, func(p entities.Participant) bool {
		return p.MeetingID == meetingID
	}), nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) Create(ctx context.Context, notification *entities.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	notification.ID = r.s.nextNotificationID
	r.s.nextNotificationID++
	r.s.notifications[notification.ID] = *notification
	return nil
}

func (r notificationRepo) FindByID(ctx context.Context, id int) (*entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return nil, entities.ErrNotificationNotFound
	}
	return &n, nil
}

func (r notificationRepo) ListByUser(ctx context.Context, userID int) ([]*entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.notifications, func(n entities.Notification) bool {
		return n.UserID == userID
	}), nil
}

func (r notificationRepo) List(ctx context.Context) ([]*entities.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedValues(r.s.notifications, nil), nil
}

func (r notificationRepo) MarkRead(ctx context.Context, id int) (*entities.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return nil, entities.ErrNotificationNotFound
	}
	n.Read = true
	r.s.notifications[id] = n
	return &n, nil
}

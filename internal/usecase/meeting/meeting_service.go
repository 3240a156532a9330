package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	store     repositories.Store
	cache     ProjectionCache
	cacheTTL  time.Duration
	publisher NotificationPublisher
	logger    *zap.Logger

	// writes counts invalidations. A projection built while it moved may be
	// stale and is not cached. Across replicas staleness is bounded by cacheTTL.
	writes atomic.Uint64
}

// NewMeetingService creates a new meeting service. cache and publisher may be nil.
func NewMeetingService(
	store repositories.Store,
	cache ProjectionCache,
	cacheTTL time.Duration,
	publisher NotificationPublisher,
	logger *zap.Logger,
) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		store:     store,
		cache:     cache,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    logger,
	}
}

func detailsKey(meetingID int) string {
	return fmt.Sprintf("meeting:%d:details", meetingID)
}

// ListMeetings returns every meeting with its details, newest first
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*entities.MeetingWithDetails, error) {
	meetings, err := s.store.Meetings().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	out := make([]*entities.MeetingWithDetails, 0, len(meetings))
	for _, m := range meetings {
		details, err := s.details(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, details)
	}
	return out, nil
}

// GetMeeting returns one meeting with its details
func (s *MeetingService) GetMeeting(ctx context.Context, id int) (*entities.MeetingWithDetails, error) {
	if cached, ok := s.cachedDetails(ctx, id); ok {
		return cached, nil
	}

	m, err := s.store.Meetings().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, m)
}

// details joins a meeting with its children, going through the cache
func (s *MeetingService) details(ctx context.Context, m *entities.Meeting) (*entities.MeetingWithDetails, error) {
	if cached, ok := s.cachedDetails(ctx, m.ID); ok {
		return cached, nil
	}
	generation := s.writes.Load()

	decisions, err := s.store.Decisions().ListByMeeting(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load decisions for meeting %d: %w", m.ID, err)
	}
	items, err := s.store.ActionItems().ListByMeeting(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load action items for meeting %d: %w", m.ID, err)
	}
	participants, err := s.store.Participants().ListByMeeting(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants for meeting %d: %w", m.ID, err)
	}

	details := &entities.MeetingWithDetails{
		Meeting:      *m,
		Decisions:    make([]entities.Decision, 0, len(decisions)),
		ActionItems:  make([]entities.ActionItem, 0, len(items)),
		Participants: make([]string, 0, len(participants)),
	}
	for _, d := range decisions {
		details.Decisions = append(details.Decisions, *d)
	}
	for _, a := range items {
		details.ActionItems = append(details.ActionItems, *a)
	}
	for _, p := range participants {
		if p.Name != "" {
			details.Participants = append(details.Participants, p.Name)
		}
	}

	s.storeDetails(ctx, details, generation)
	return details, nil
}

func (s *MeetingService) cachedDetails(ctx context.Context, id int) (*entities.MeetingWithDetails, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, detailsKey(id))
	if err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		s.logger.Warn("Projection cache read failed", zap.Int("meeting_id", id), zap.Error(err))
		return nil, false
	}
	if !ok {
		cacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	var details entities.MeetingWithDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		cacheRequests.WithLabelValues("error").Inc()
		s.logger.Warn("Discarding corrupt projection", zap.Int("meeting_id", id), zap.Error(err))
		return nil, false
	}
	cacheRequests.WithLabelValues("hit").Inc()
	return &details, true
}

// storeDetails caches a projection built at the given write generation
func (s *MeetingService) storeDetails(ctx context.Context, details *entities.MeetingWithDetails, generation uint64) {
	if s.cache == nil || s.writes.Load() != generation {
		return
	}

	raw, err := json.Marshal(details)
	if err != nil {
		s.logger.Warn("Failed to encode projection", zap.Int("meeting_id", details.ID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, detailsKey(details.ID), string(raw), s.cacheTTL); err != nil {
		s.logger.Warn("Projection cache write failed", zap.Int("meeting_id", details.ID), zap.Error(err))
		return
	}

	// a write that landed between the check and the Set may have missed this entry
	if s.writes.Load() != generation {
		s.invalidate(ctx, details.ID)
	}
}

// invalidate drops cached projections of the given meetings
func (s *MeetingService) invalidate(ctx context.Context, meetingIDs ...int) {
	if s.cache == nil || len(meetingIDs) == 0 {
		return
	}
	s.writes.Add(1)

	keys := make([]string, 0, len(meetingIDs))
	for _, id := range meetingIDs {
		keys = append(keys, detailsKey(id))
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("Projection cache invalidation failed", zap.Ints("meeting_ids", meetingIDs), zap.Error(err))
	}
}

// CreateMeeting creates a new meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	m := entities.NewMeeting(input.Title, input.Date, input.Duration)
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, entities.ErrInvalidMeetingStatus
		}
		m.Status = input.Status
	}
	m.Summary = input.Summary
	m.Transcription = input.Transcription
	m.AudioURL = input.AudioURL

	if err := s.store.Meetings().Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info("Meeting created", zap.Int("meeting_id", m.ID), zap.String("status", string(m.Status)))
	return m, nil
}

// UpdateMeeting applies a partial update
func (s *MeetingService) UpdateMeeting(ctx context.Context, id int, patch entities.MeetingPatch) (*entities.Meeting, error) {
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, entities.ErrInvalidMeetingStatus
	}

	m, err := s.store.Meetings().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return m, nil
}

// SetTopics records the summary topics of a meeting
func (s *MeetingService) SetTopics(ctx context.Context, id int, topics []string) error {
	if err := s.store.Meetings().SetTopics(ctx, id, topics); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// AddParticipant records a participant of a meeting
func (s *MeetingService) AddParticipant(ctx context.Context, participant *entities.Participant) error {
	if err := s.store.Participants().Create(ctx, participant); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	s.invalidate(ctx, participant.MeetingID)
	return nil
}

// CreateDecision records a decision. The meeting is not required to exist.
func (s *MeetingService) CreateDecision(ctx context.Context, input CreateDecisionInput) (*entities.Decision, error) {
	d := &entities.Decision{MeetingID: input.MeetingID, Text: input.Text}
	if err := s.store.Decisions().Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}
	s.invalidate(ctx, d.MeetingID)
	return d, nil
}

// ListActionItems returns all action items
func (s *MeetingService) ListActionItems(ctx context.Context) ([]*entities.ActionItem, error) {
	return s.store.ActionItems().List(ctx)
}

// CreateActionItem records an action item, defaulting its status
func (s *MeetingService) CreateActionItem(ctx context.Context, input CreateActionItemInput) (*entities.ActionItem, error) {
	item := entities.NewActionItem(input.MeetingID, input.Task, input.Assignee, input.DueDate)
	if input.Status != "" {
		item.Status = input.Status
	}
	item.Completed = input.Completed

	if err := s.store.ActionItems().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	s.invalidate(ctx, item.MeetingID)
	return item, nil
}

// UpdateActionItem applies a partial update
func (s *MeetingService) UpdateActionItem(ctx context.Context, id int, patch entities.ActionItemPatch) (*entities.ActionItem, error) {
	before, err := s.store.ActionItems().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := s.store.ActionItems().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if before.MeetingID != item.MeetingID {
		s.invalidate(ctx, before.MeetingID, item.MeetingID)
	} else {
		s.invalidate(ctx, item.MeetingID)
	}
	return item, nil
}

// ListUsers returns all users
func (s *MeetingService) ListUsers(ctx context.Context) ([]*entities.User, error) {
	return s.store.Users().List(ctx)
}

// ListNotifications returns a user's notifications, newest first
func (s *MeetingService) ListNotifications(ctx context.Context, userID int) ([]*entities.Notification, error) {
	notifications, err := s.store.Notifications().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	sortNotifications(notifications)
	return notifications, nil
}

// CreateNotification stores a notification and pushes it to subscribers
func (s *MeetingService) CreateNotification(ctx context.Context, input CreateNotificationInput) (*entities.Notification, error) {
	n := &entities.Notification{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Read:        input.Read,
	}
	if err := s.store.Notifications().Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.publish(EventNotificationCreated, n)
	return n, nil
}

// MarkNotificationRead marks a notification as read
func (s *MeetingService) MarkNotificationRead(ctx context.Context, id int) (*entities.Notification, error) {
	n, err := s.store.Notifications().MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(EventNotificationRead, n)
	return n, nil
}

func (s *MeetingService) publish(eventType string, n *entities.Notification) {
	if s.publisher == nil {
		return
	}
	copied := *n
	s.publisher.PublishNotification(eventType, &copied)
}

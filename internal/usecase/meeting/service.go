package meeting

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// ListMeetings returns every meeting with its details, newest first
	ListMeetings(ctx context.Context) ([]*entities.MeetingWithDetails, error)

	// GetMeeting returns a meeting joined with its decisions, action items and participant names
	GetMeeting(ctx context.Context, id int) (*entities.MeetingWithDetails, error)

	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)
	UpdateMeeting(ctx context.Context, id int, patch entities.MeetingPatch) (*entities.Meeting, error)

	// SetTopics records the summary topics of a meeting
	SetTopics(ctx context.Context, id int, topics []string) error

	// AddParticipant records a participant; the name is resolved from the user when set
	AddParticipant(ctx context.Context, participant *entities.Participant) error

	CreateDecision(ctx context.Context, input CreateDecisionInput) (*entities.Decision, error)

	ListActionItems(ctx context.Context) ([]*entities.ActionItem, error)
	CreateActionItem(ctx context.Context, input CreateActionItemInput) (*entities.ActionItem, error)
	UpdateActionItem(ctx context.Context, id int, patch entities.ActionItemPatch) (*entities.ActionItem, error)

	ListUsers(ctx context.Context) ([]*entities.User, error)

	// ListNotifications returns a user's notifications, newest first by relative date
	ListNotifications(ctx context.Context, userID int) ([]*entities.Notification, error)
	CreateNotification(ctx context.Context, input CreateNotificationInput) (*entities.Notification, error)

	// MarkNotificationRead sets read=true; repeating it is not an error
	MarkNotificationRead(ctx context.Context, id int) (*entities.Notification, error)
}

// ProjectionCache caches serialized MeetingWithDetails projections
type ProjectionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// NotificationPublisher receives notification changes for realtime delivery
type NotificationPublisher interface {
	PublishNotification(eventType string, n *entities.Notification)
}

// Notification event types
const (
	EventNotificationCreated = "notification.created"
	EventNotificationRead    = "notification.read"
)

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

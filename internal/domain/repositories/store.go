package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create stores a new user and assigns its ID
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int) (*entities.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]*entities.User, error)
}

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create stores a new meeting, assigns its ID and sets CreatedAt
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, id int) (*entities.Meeting, error)

	// Update merges the patch into an existing meeting
	Update(ctx context.Context, id int, patch entities.MeetingPatch) (*entities.Meeting, error)

	// SetTopics replaces the topics recorded for a meeting
	SetTopics(ctx context.Context, id int, topics []string) error

	// List returns all meetings, newest first (CreatedAt desc, then ID desc)
	List(ctx context.Context) ([]*entities.Meeting, error)
}

// DecisionRepository defines the interface for decision data access
type DecisionRepository interface {
	Create(ctx context.Context, decision *entities.Decision) error
	FindByID(ctx context.Context, id int) (*entities.Decision, error)
	ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Decision, error)
}

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	Create(ctx context.Context, item *entities.ActionItem) error
	FindByID(ctx context.Context, id int) (*entities.ActionItem, error)
	ListByMeeting(ctx context.Context, meetingID int) ([]*entities.ActionItem, error)

	// List returns all action items ordered by ID
	List(ctx context.Context) ([]*entities.ActionItem, error)

	// Update merges the patch into an existing action item
	Update(ctx context.Context, id int, patch entities.ActionItemPatch) (*entities.ActionItem, error)
}

// ParticipantRepository defines the interface for participant data access.
// Implementations resolve Name from UserID at write time.
type ParticipantRepository interface {
	Create(ctx context.Context, participant *entities.Participant) error
	ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Participant, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	FindByID(ctx context.Context, id int) (*entities.Notification, error)

	// ListByUser returns a user's notifications ordered by ID
	ListByUser(ctx context.Context, userID int) ([]*entities.Notification, error)
	List(ctx context.Context) ([]*entities.Notification, error)

	// MarkRead sets read=true; calling it again is a no-op
	MarkRead(ctx context.Context, id int) (*entities.Notification, error)
}

// Store is the full storage capability set. Variants: in-memory and postgres.
type Store interface {
	Users() UserRepository
	Meetings() MeetingRepository
	Decisions() DecisionRepository
	ActionItems() ActionItemRepository
	Participants() ParticipantRepository
	Notifications() NotificationRepository

	// Close releases backend resources
	Close() error
}

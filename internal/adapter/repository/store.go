package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// Store is the PostgreSQL backed storage, one GORM repository per entity
type Store struct {
	db            *gorm.DB
	users         *UserRepository
	meetings      *MeetingRepository
	decisions     *DecisionRepository
	actionItems   *ActionItemRepository
	participants  repositories.ParticipantRepository
	notifications *NotificationRepository
}

var _ repositories.Store = (*Store)(nil)

// NewStore wires the GORM repositories over a shared connection
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		users:         NewUserRepository(db),
		meetings:      NewMeetingRepository(db),
		decisions:     NewDecisionRepository(db),
		actionItems:   NewActionItemRepository(db),
		participants:  NewParticipantRepository(db),
		notifications: NewNotificationRepository(db),
	}
}

func (s *Store) Users() repositories.UserRepository                 { return s.users }
func (s *Store) Meetings() repositories.MeetingRepository           { return s.meetings }
func (s *Store) Decisions() repositories.DecisionRepository         { return s.decisions }
func (s *Store) ActionItems() repositories.ActionItemRepository     { return s.actionItems }
func (s *Store) Participants() repositories.ParticipantRepository   { return s.participants }
func (s *Store) Notifications() repositories.NotificationRepository { return s.notifications }

// Close closes the underlying connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// Create creates a new participant record, copying the user's name when the
// participant references a user
func (r *participantRepository) Create(ctx context.Context, participant *entities.Participant) error {
	if participant.UserID != nil && participant.Name == "" {
		var user entities.User
		err := r.db.WithContext(ctx).Select("name").Where("id = ?", *participant.UserID).First(&user).Error
		switch {
		case err == nil:
			participant.Name = user.Name
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to resolve participant name: %w", err)
		}
	}
	return r.db.WithContext(ctx).Create(participant).Error
}

// ListByMeeting retrieves all participants of a meeting
func (r *participantRepository) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Participant, error) {
	var participants []*entities.Participant
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&participants).Error
	return participants, err
}

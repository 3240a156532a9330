package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingRepository implements the meeting repository interface using GORM
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting.Status == "" {
		meeting.Status = entities.MeetingStatusProcessing
	}
	meeting.CreatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID finds a meeting by ID
func (r *MeetingRepository) FindByID(ctx context.Context, id int) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// Update applies a partial update to a meeting
func (r *MeetingRepository) Update(ctx context.Context, id int, patch entities.MeetingPatch) (*entities.Meeting, error) {
	var meeting *entities.Meeting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Meeting
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}
		patch.Apply(&current)
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		meeting = &current
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// SetTopics replaces the topics column
func (r *MeetingRepository) SetTopics(ctx context.Context, id int, topics []string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("topics", datatypes.JSONSlice[string](topics))
	if result.Error != nil {
		return fmt.Errorf("failed to set meeting topics: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// List lists meetings, newest first
func (r *MeetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

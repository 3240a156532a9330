package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// ActionItemRepository implements the action item repository interface using GORM
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// Create creates a new action item
func (r *ActionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	if item.Status == "" {
		item.Status = entities.ActionItemStatusNotStarted
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create action item: %w", err)
	}
	return nil
}

// FindByID finds an action item by ID
func (r *ActionItemRepository) FindByID(ctx context.Context, id int) (*entities.ActionItem, error) {
	var item entities.ActionItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to find action item by ID: %w", err)
	}
	return &item, nil
}

// ListByMeeting lists the action items of a meeting
func (r *ActionItemRepository) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// List lists all action items
func (r *ActionItemRepository) List(ctx context.Context) ([]*entities.ActionItem, error) {
	var items []*entities.ActionItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}

// Update applies a partial update to an action item
func (r *ActionItemRepository) Update(ctx context.Context, id int, patch entities.ActionItemPatch) (*entities.ActionItem, error) {
	var item *entities.ActionItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.ActionItem
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}
		patch.Apply(&current)
		if err := tx.Save(&current).Error; err != nil {
			return err
		}
		item = &current
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

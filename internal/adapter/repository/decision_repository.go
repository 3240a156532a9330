package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// DecisionRepository implements the decision repository interface using GORM
type DecisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

func (r *DecisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	if err := r.db.WithContext(ctx).Create(decision).Error; err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}
	return nil
}

func (r *DecisionRepository) FindByID(ctx context.Context, id int) (*entities.Decision, error) {
	var decision entities.Decision
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&decision).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDecisionNotFound
		}
		return nil, fmt.Errorf("failed to find decision by ID: %w", err)
	}
	return &decision, nil
}

func (r *DecisionRepository) ListByMeeting(ctx context.Context, meetingID int) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&decisions).Error; err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, nil
}

package meeting

import (
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title         string  `json:"title" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Duration      string  `json:"duration" validate:"required"`
	Status        string  `json:"status,omitempty" validate:"omitempty,oneof=Processing Analyzed Completed"`
	Summary       string  `json:"summary,omitempty"`
	Transcription string  `json:"transcription,omitempty"`
	AudioURL      *string `json:"audioUrl,omitempty"`
}

// ToInput converts the request to a use case input
func (r *CreateMeetingRequest) ToInput() meeting.CreateMeetingInput {
	return meeting.CreateMeetingInput{
		Title:         r.Title,
		Date:          r.Date,
		Duration:      r.Duration,
		Status:        entities.MeetingStatus(r.Status),
		Summary:       r.Summary,
		Transcription: r.Transcription,
		AudioURL:      r.AudioURL,
	}
}

// UpdateMeetingRequest is a partial CreateMeetingRequest
type UpdateMeetingRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Date          *string `json:"date,omitempty" validate:"omitempty,min=1"`
	Duration      *string `json:"duration,omitempty" validate:"omitempty,min=1"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=Processing Analyzed Completed"`
	Summary       *string `json:"summary,omitempty"`
	Transcription *string `json:"transcription,omitempty"`
	AudioURL      *string `json:"audioUrl,omitempty"`
}

// ToPatch converts the request to a meeting patch
func (r *UpdateMeetingRequest) ToPatch() entities.MeetingPatch {
	patch := entities.MeetingPatch{
		Title:         r.Title,
		Date:          r.Date,
		Duration:      r.Duration,
		Summary:       r.Summary,
		Transcription: r.Transcription,
		AudioURL:      r.AudioURL,
	}
	if r.Status != nil {
		status := entities.MeetingStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// CreateDecisionRequest represents the request to record a decision
type CreateDecisionRequest struct {
	MeetingID int    `json:"meetingId" validate:"required,gt=0"`
	Text      string `json:"text" validate:"required"`
}

// ToInput converts the request to a use case input
func (r *CreateDecisionRequest) ToInput() meeting.CreateDecisionInput {
	return meeting.CreateDecisionInput{MeetingID: r.MeetingID, Text: r.Text}
}

// CreateActionItemRequest represents the request to create an action item
type CreateActionItemRequest struct {
	MeetingID int    `json:"meetingId" validate:"required,gt=0"`
	Task      string `json:"task" validate:"required"`
	Assignee  string `json:"assignee" validate:"required"`
	DueDate   string `json:"dueDate" validate:"required"`
	Status    string `json:"status,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}

// ToInput converts the request to a use case input
func (r *CreateActionItemRequest) ToInput() meeting.CreateActionItemInput {
	return meeting.CreateActionItemInput{
		MeetingID: r.MeetingID,
		Task:      r.Task,
		Assignee:  r.Assignee,
		DueDate:   r.DueDate,
		Status:    r.Status,
		Completed: r.Completed,
	}
}

// UpdateActionItemRequest is a partial CreateActionItemRequest
type UpdateActionItemRequest struct {
	MeetingID *int    `json:"meetingId,omitempty" validate:"omitempty,gt=0"`
	Task      *string `json:"task,omitempty" validate:"omitempty,min=1"`
	Assignee  *string `json:"assignee,omitempty" validate:"omitempty,min=1"`
	DueDate   *string `json:"dueDate,omitempty" validate:"omitempty,min=1"`
	Status    *string `json:"status,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ToPatch converts the request to an action item patch
func (r *UpdateActionItemRequest) ToPatch() entities.ActionItemPatch {
	return entities.ActionItemPatch{
		MeetingID: r.MeetingID,
		Task:      r.Task,
		Assignee:  r.Assignee,
		DueDate:   r.DueDate,
		Status:    r.Status,
		Completed: r.Completed,
	}
}

// CreateNotificationRequest represents the request to create a notification
type CreateNotificationRequest struct {
	UserID      int    `json:"userId" validate:"required,gt=0"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Read        bool   `json:"read,omitempty"`
}

// ToInput converts the request to a use case input
func (r *CreateNotificationRequest) ToInput() meeting.CreateNotificationInput {
	return meeting.CreateNotificationInput{
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Read:        r.Read,
	}
}

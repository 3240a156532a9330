package meeting

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title         string
	Date          string
	Duration      string
	Status        entities.MeetingStatus
	Summary       string
	Transcription string
	AudioURL      *string
}

// CreateDecisionInput represents input for creating a decision
type CreateDecisionInput struct {
	MeetingID int
	Text      string
}

// CreateActionItemInput represents input for creating an action item
type CreateActionItemInput struct {
	MeetingID int
	Task      string
	Assignee  string
	DueDate   string
	Status    string
	Completed bool
}

// CreateNotificationInput represents input for creating a notification
type CreateNotificationInput struct {
	UserID      int
	Title       string
	Description string
	Date        string
	Read        bool
}

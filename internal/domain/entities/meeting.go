package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MeetingStatus is the processing state of a meeting
type MeetingStatus string

const (
	MeetingStatusProcessing MeetingStatus = "Processing"
	MeetingStatusAnalyzed   MeetingStatus = "Analyzed"
	MeetingStatusCompleted  MeetingStatus = "Completed"
)

// IsValid checks if the meeting status is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusProcessing, MeetingStatusAnalyzed, MeetingStatusCompleted:
		return true
	}
	return false
}

// Meeting is a recorded or uploaded meeting. Date and Duration are display strings.
type Meeting struct {
	ID            int                         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string                      `json:"title" gorm:"type:text;not null"`
	Date          string                      `json:"date" gorm:"type:text;not null"`
	Duration      string                      `json:"duration" gorm:"type:text;not null"`
	Status        MeetingStatus               `json:"status" gorm:"type:varchar(32);not null;default:'Processing'"`
	Summary       string                      `json:"summary" gorm:"type:text;default:''"`
	Transcription string                      `json:"transcription" gorm:"type:text;default:''"`
	AudioURL      *string                     `json:"audioUrl" gorm:"column:audio_url;type:text"`
	Topics        datatypes.JSONSlice[string] `json:"topics,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time                   `json:"createdAt" gorm:"not null"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// MeetingPatch is a partial meeting update; nil fields are left untouched
type MeetingPatch struct {
	Title         *string
	Date          *string
	Duration      *string
	Status        *MeetingStatus
	Summary       *string
	Transcription *string
	AudioURL      *string
}

// Apply merges the patch into the meeting
func (p MeetingPatch) Apply(m *Meeting) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Summary != nil {
		m.Summary = *p.Summary
	}
	if p.Transcription != nil {
		m.Transcription = *p.Transcription
	}
	if p.AudioURL != nil {
		url := *p.AudioURL
		m.AudioURL = &url
	}
}

// NewMeeting creates a meeting with default values
func NewMeeting(title, date, duration string) *Meeting {
	return &Meeting{
		Title:    title,
		Date:     date,
		Duration: duration,
		Status:   MeetingStatusProcessing,
	}
}

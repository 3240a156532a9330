package analysis

import (
	"context"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
)

// Service defines the interface for the analysis use case
type Service interface {
	// Preview analyzes a transcript without persisting anything
	Preview(text string) *Preview

	// AnalyzeTranscript synthesizes, extracts and persists a meeting from a transcript
	AnalyzeTranscript(ctx context.Context, input AnalyzeInput) (*Result, error)

	// AnalyzeUpload analyzes an uploaded CSV transcript or audio recording
	AnalyzeUpload(ctx context.Context, input UploadInput) (*Result, error)
}

// MeetingRecorder is the subset of the meeting use case the pipeline writes through
type MeetingRecorder interface {
	CreateMeeting(ctx context.Context, input meeting.CreateMeetingInput) (*entities.Meeting, error)
	SetTopics(ctx context.Context, id int, topics []string) error
	AddParticipant(ctx context.Context, participant *entities.Participant) error
	CreateDecision(ctx context.Context, input meeting.CreateDecisionInput) (*entities.Decision, error)
	CreateActionItem(ctx context.Context, input meeting.CreateActionItemInput) (*entities.ActionItem, error)
	CreateNotification(ctx context.Context, input meeting.CreateNotificationInput) (*entities.Notification, error)
	GetMeeting(ctx context.Context, id int) (*entities.MeetingWithDetails, error)
}

// ObjectStore archives uploads and returns a URL to them
type ObjectStore interface {
	// Archive stores a recording
	Archive(ctx context.Context, filename string, data []byte, contentType string) (string, error)
	// ArchiveTranscript stores the original text of an uploaded transcript
	ArchiveTranscript(ctx context.Context, filename string, content string) (string, error)
}

// Sources of an analysis, used as metric labels
const (
	SourceTranscript = "transcript"
	SourceCSV        = "csv"
	SourceAudio      = "audio"
)

// AnalyzeInput represents input for analyzing a transcript
type AnalyzeInput struct {
	Transcription string
	// Duration is a display string; empty uses the configured default
	Duration string
	AudioURL *string
	Source   string
}

// UploadInput represents an uploaded file
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
	Duration    string
}

// Preview is an analysis that was not persisted
type Preview struct {
	Synopsis   Synopsis   `json:"synopsis"`
	Extraction Extraction `json:"extraction"`
	Speakers   []string   `json:"speakers"`
}

// Result is the outcome of a persisted analysis
type Result struct {
	Meeting      *entities.MeetingWithDetails `json:"meeting"`
	UsedFallback FallbackUsage                `json:"usedFallback"`
	Notification *entities.Notification       `json:"notification"`
	Warning      string                       `json:"warning,omitempty"`
	// TranscriptURL points at the archived upload of a CSV transcript
	TranscriptURL string `json:"transcriptUrl,omitempty"`
}

// Ensure AnalysisService implements Service interface
var _ Service = (*AnalysisService)(nil)

// Ensure the meeting use case can back the pipeline
var _ MeetingRecorder = (*meeting.MeetingService)(nil)

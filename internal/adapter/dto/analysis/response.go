package analysis

import "github.com/johnquangdev/meeting-insights/internal/domain/entities"

// AnalyzeResponse is a persisted meeting plus how it was derived
type AnalyzeResponse struct {
	*entities.MeetingWithDetails
	UsedFallback UsedFallback `json:"usedFallback"`
	Warning      string       `json:"warning,omitempty"`
	// TranscriptURL is set when an uploaded CSV was archived
	TranscriptURL string `json:"transcriptUrl,omitempty"`
}

// UsedFallback reports which lists were replaced by defaults
type UsedFallback struct {
	Decisions   bool `json:"decisions"`
	ActionItems bool `json:"actionItems"`
}

// ParseResponse is the result of converting a CSV transcript
type ParseResponse struct {
	Transcription string `json:"transcription"`
	Fallback      bool   `json:"fallback"`
	Warning       string `json:"warning,omitempty"`
}

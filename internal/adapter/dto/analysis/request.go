package analysis

// AnalyzeRequest represents a JSON analysis request
type AnalyzeRequest struct {
	Transcription string `json:"transcription" validate:"required"`
	Duration      string `json:"duration,omitempty" validate:"omitempty,max=64"`
}

// ParseRequest carries raw CSV text when no file is uploaded
type ParseRequest struct {
	Content string `json:"content" validate:"required"`
}

package presenter

import (
	analysisDTO "github.com/johnquangdev/meeting-insights/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

// ToAnalyzeResponse converts an analysis result to its API shape
func ToAnalyzeResponse(r *analysis.Result) *analysisDTO.AnalyzeResponse {
	if r == nil {
		return nil
	}

	return &analysisDTO.AnalyzeResponse{
		MeetingWithDetails: r.Meeting,
		UsedFallback: analysisDTO.UsedFallback{
			Decisions:   r.UsedFallback.Decisions,
			ActionItems: r.UsedFallback.ActionItems,
		},
		Warning:       r.Warning,
		TranscriptURL: r.TranscriptURL,
	}
}

// ToParseResponse converts a CSV parse result to its API shape
func ToParseResponse(r transcript.Result) *analysisDTO.ParseResponse {
	return &analysisDTO.ParseResponse{
		Transcription: r.Transcript,
		Fallback:      r.Fallback,
		Warning:       r.Warning,
	}
}

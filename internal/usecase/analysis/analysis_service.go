package analysis

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-insights/internal/usecase/errors"
	"github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

const (
	meetingDateLayout      = "January 2, 2006"
	defaultMeetingDuration = "25 minutes"
	completionTitle        = "Meeting analysis complete"
	completionDate         = "Just now"
	completionDescription  = "%s analysis is ready"
)

// Options tunes the analysis service
type Options struct {
	// DemoUserID receives the completion notification
	DemoUserID      int
	DefaultDuration string
	Now             func() time.Time
}

// AnalysisService runs the transcript analysis pipeline
type AnalysisService struct {
	recorder  MeetingRecorder
	extractor *Extractor
	objects   ObjectStore
	metrics   *Metrics
	logger    *zap.Logger
	opts      Options
}

// NewAnalysisService creates the analysis service. objects may be nil when
// object storage is disabled.
func NewAnalysisService(
	recorder MeetingRecorder,
	extractor *Extractor,
	objects ObjectStore,
	metrics *Metrics,
	logger *zap.Logger,
	opts Options,
) *AnalysisService {
	if opts.DemoUserID == 0 {
		opts.DemoUserID = 1
	}
	if opts.DefaultDuration == "" {
		opts.DefaultDuration = defaultMeetingDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AnalysisService{
		recorder:  recorder,
		extractor: extractor,
		objects:   objects,
		metrics:   metrics,
		logger:    logger,
		opts:      opts,
	}
}

// Preview analyzes a transcript without persisting anything
func (s *AnalysisService) Preview(text string) *Preview {
	return &Preview{
		Synopsis:   Synthesize(text),
		Extraction: s.extractor.Extract(text),
		Speakers:   Speakers(text),
	}
}

// archiveTranscript keeps the uploaded CSV next to the meeting it produced.
// The meeting already holds the converted text, so a failed upload is only logged.
func (s *AnalysisService) archiveTranscript(ctx context.Context, input UploadInput) string {
	if s.objects == nil {
		return ""
	}

	url, err := s.objects.ArchiveTranscript(ctx, input.Filename, string(input.Data))
	if err != nil {
		s.logger.Warn("Failed to archive transcript upload", zap.String("filename", input.Filename), zap.Error(err))
		return ""
	}
	if s.metrics != nil {
		s.metrics.ArchivedBytesTotal.Add(float64(len(input.Data)))
	}
	s.logger.Info("Transcript archived", zap.String("filename", input.Filename), zap.Int("bytes", len(input.Data)))
	return url
}

// AnalyzeUpload routes CSV files through the transcript parser. Any other file
// is treated as a recording: it is archived when storage is configured and the
// demo transcript stands in for its transcription.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, input UploadInput) (*Result, error) {
	if strings.TrimSpace(input.Filename) == "" {
		return nil, usecaseErrors.ErrUnsupportedUpload
	}

	if strings.EqualFold(filepath.Ext(input.Filename), ".csv") {
		parsed := transcript.ParseCSV(string(input.Data))
		if parsed.Fallback {
			s.logger.Warn("CSV upload could not be parsed, using raw content",
				zap.String("filename", input.Filename),
			)
		}

		result, err := s.AnalyzeTranscript(ctx, AnalyzeInput{
			Transcription: parsed.Transcript,
			Duration:      input.Duration,
			Source:        SourceCSV,
		})
		if err != nil {
			return nil, err
		}
		result.Warning = parsed.Warning
		result.TranscriptURL = s.archiveTranscript(ctx, input)
		return result, nil
	}

	var audioURL *string
	if s.objects != nil {
		url, err := s.objects.Archive(ctx, input.Filename, input.Data, input.ContentType)
		if err != nil {
			s.observe(SourceAudio, "failed")
			return nil, fmt.Errorf("%w: %s: %w", usecaseErrors.ErrArchiveFailed, input.Filename, err)
		}
		audioURL = &url
		if s.metrics != nil {
			s.metrics.ArchivedBytesTotal.Add(float64(len(input.Data)))
		}
		s.logger.Info("Recording archived", zap.String("filename", input.Filename), zap.Int("bytes", len(input.Data)))
	}

	return s.AnalyzeTranscript(ctx, AnalyzeInput{
		Transcription: DemoTranscript,
		Duration:      input.Duration,
		AudioURL:      audioURL,
		Source:        SourceAudio,
	})
}

// AnalyzeTranscript creates an analyzed meeting from a transcript. Decisions
// and action items are written one by one; the first failure stops the run
// and whatever was written so far remains.
func (s *AnalysisService) AnalyzeTranscript(ctx context.Context, input AnalyzeInput) (*Result, error) {
	start := time.Now()
	source := input.Source
	if source == "" {
		source = SourceTranscript
	}

	if strings.TrimSpace(input.Transcription) == "" {
		s.observe(source, "rejected")
		return nil, usecaseErrors.ErrTranscriptEmpty
	}

	result, err := s.analyze(ctx, input)
	if err != nil {
		s.observe(source, "failed")
		s.logger.Error("❌ Analysis failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	s.observe(source, "succeeded")
	if s.metrics != nil {
		s.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}
	s.logger.Info("✅ Meeting analyzed",
		zap.Int("meeting_id", result.Meeting.ID),
		zap.String("source", source),
		zap.Int("decisions", len(result.Meeting.Decisions)),
		zap.Int("action_items", len(result.Meeting.ActionItems)),
	)
	return result, nil
}

func (s *AnalysisService) analyze(ctx context.Context, input AnalyzeInput) (*Result, error) {
	synopsis := Synthesize(input.Transcription)

	duration := input.Duration
	if duration == "" {
		duration = s.opts.DefaultDuration
	}

	m, err := s.recorder.CreateMeeting(ctx, meeting.CreateMeetingInput{
		Title:         synopsis.Title,
		Date:          s.opts.Now().Format(meetingDateLayout),
		Duration:      duration,
		Status:        entities.MeetingStatusAnalyzed,
		Summary:       synopsis.Summary,
		Transcription: input.Transcription,
		AudioURL:      input.AudioURL,
	})
	if err != nil {
		return nil, err
	}

	if len(synopsis.Topics) > 0 {
		if err := s.recorder.SetTopics(ctx, m.ID, synopsis.Topics); err != nil {
			return nil, fmt.Errorf("failed to record topics for meeting %d: %w", m.ID, err)
		}
	}

	for _, speaker := range Speakers(input.Transcription) {
		if err := s.recorder.AddParticipant(ctx, entities.NewNamedParticipant(m.ID, speaker)); err != nil {
			return nil, fmt.Errorf("failed to record participant for meeting %d: %w", m.ID, err)
		}
	}

	extraction := s.extractor.Extract(input.Transcription)
	s.recordExtraction(extraction)

	for _, text := range extraction.Decisions {
		if _, err := s.recorder.CreateDecision(ctx, meeting.CreateDecisionInput{MeetingID: m.ID, Text: text}); err != nil {
			return nil, fmt.Errorf("failed to persist decision for meeting %d: %w", m.ID, err)
		}
	}

	for _, item := range extraction.ActionItems {
		_, err := s.recorder.CreateActionItem(ctx, meeting.CreateActionItemInput{
			MeetingID: m.ID,
			Task:      item.Task,
			Assignee:  item.Assignee,
			DueDate:   item.DueDate,
			Status:    item.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to persist action item for meeting %d: %w", m.ID, err)
		}
	}

	notification, err := s.recorder.CreateNotification(ctx, meeting.CreateNotificationInput{
		UserID:      s.opts.DemoUserID,
		Title:       completionTitle,
		Description: fmt.Sprintf(completionDescription, m.Title),
		Date:        completionDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to notify completion of meeting %d: %w", m.ID, err)
	}

	details, err := s.recorder.GetMeeting(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load analyzed meeting %d: %w", m.ID, err)
	}

	return &Result{
		Meeting:      details,
		UsedFallback: extraction.UsedFallback,
		Notification: notification,
	}, nil
}

func (s *AnalysisService) observe(source, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnalysesTotal.WithLabelValues(source, status).Inc()
}

func (s *AnalysisService) recordExtraction(e Extraction) {
	if s.metrics == nil {
		return
	}
	if e.UsedFallback.Decisions {
		s.metrics.FallbacksTotal.WithLabelValues("decisions").Inc()
	} else {
		s.metrics.ExtractedTotal.WithLabelValues("decisions").Add(float64(len(e.Decisions)))
	}
	if e.UsedFallback.ActionItems {
		s.metrics.FallbacksTotal.WithLabelValues("action_items").Inc()
	} else {
		s.metrics.ExtractedTotal.WithLabelValues("action_items").Add(float64(len(e.ActionItems)))
	}
}

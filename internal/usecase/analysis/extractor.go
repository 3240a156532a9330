package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

const unknownSpeaker = "Unknown"

// speaker labels longer than this are treated as prose containing a colon
const maxSpeakerLabel = 40

// ExtractedActionItem is an action item before it is attached to a meeting
type ExtractedActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate"`
	Status   string `json:"status"`
}

// FallbackUsage reports which lists were replaced by the demo defaults
type FallbackUsage struct {
	Decisions   bool `json:"decisions"`
	ActionItems bool `json:"actionItems"`
}

// Extraction is the result of scanning a transcript
type Extraction struct {
	Decisions    []string              `json:"decisions"`
	ActionItems  []ExtractedActionItem `json:"actionItems"`
	UsedFallback FallbackUsage         `json:"usedFallback"`
}

var fallbackDecisions = []string{
	"Prioritize redesigning the user onboarding flow",
	"Delay marketing campaign from June to July",
	"Allocate $5,000 for user testing",
}

var fallbackActionItems = []ExtractedActionItem{
	{
		Task:     "Create new designs for onboarding flow",
		Assignee: "Jane Smith",
		DueDate:  "April 28, 2025",
		Status:   entities.ActionItemStatusNotStarted,
	},
	{
		Task:     "Update marketing team and adjust campaign timeline",
		Assignee: "Alex Johnson",
		DueDate:  "April 23, 2025",
		Status:   entities.ActionItemStatusNotStarted,
	},
	{
		Task:     "Coordinate with finance for user testing budget",
		Assignee: "Jane Smith",
		DueDate:  "April 24, 2025",
		Status:   entities.ActionItemStatusNotStarted,
	},
}

// FallbackDecisions returns a copy of the default decision list
func FallbackDecisions() []string {
	return append([]string(nil), fallbackDecisions...)
}

// FallbackActionItems returns a copy of the default action item list
func FallbackActionItems() []ExtractedActionItem {
	return append([]ExtractedActionItem(nil), fallbackActionItems...)
}

// Extractor finds decisions and action items in a normalized transcript
type Extractor struct {
	rules    Rules
	dueDates DueDateSource
}

// NewExtractor creates an extractor
func NewExtractor(rules Rules, dueDates DueDateSource) *Extractor {
	return &Extractor{
		rules:    rules,
		dueDates: dueDates,
	}
}

// Extract scans the transcript line by line. A line whose decision cue is
// suppressed is skipped entirely. When nothing is found the demo defaults are
// substituted and flagged in UsedFallback.
func (e *Extractor) Extract(text string) Extraction {
	var out Extraction

	for _, line := range transcript.SplitLines(text) {
		lower := strings.ToLower(line)

		cued, suppressed := e.rules.Decisions.Classify(lower)
		if suppressed {
			continue
		}
		if cued {
			out.Decisions = append(out.Decisions, utteranceText(line))
		}

		if e.rules.ActionItems.Matches(lower) {
			out.ActionItems = append(out.ActionItems, ExtractedActionItem{
				Task:     utteranceText(line),
				Assignee: e.rules.Assignee(speakerLabel(line)),
				DueDate:  e.dueDates.Next(),
				Status:   entities.ActionItemStatusNotStarted,
			})
		}
	}

	if len(out.Decisions) == 0 {
		out.Decisions = FallbackDecisions()
		out.UsedFallback.Decisions = true
	}
	if len(out.ActionItems) == 0 {
		out.ActionItems = FallbackActionItems()
		out.UsedFallback.ActionItems = true
	}

	return out
}

// utteranceText is the text after the first colon, or the whole line when
// that is empty
func utteranceText(line string) string {
	_, text, ok := transcript.SplitSpeaker(line)
	if !ok || text == "" {
		return strings.TrimSpace(line)
	}
	return text
}

// speakerLabel is the text before the first colon. A line without a colon
// is its own label.
func speakerLabel(line string) string {
	speaker, _, ok := transcript.SplitSpeaker(line)
	if !ok {
		speaker = strings.TrimSpace(line)
	}
	if speaker == "" {
		return unknownSpeaker
	}
	return speaker
}

// Speakers returns the distinct speaker labels in order of first appearance
func Speakers(text string) []string {
	var speakers []string
	seen := make(map[string]bool)

	for _, line := range transcript.SplitLines(text) {
		speaker, _, ok := transcript.SplitSpeaker(line)
		if !ok || speaker == "" || utf8.RuneCountInString(speaker) > maxSpeakerLabel {
			continue
		}
		if seen[speaker] {
			continue
		}
		seen[speaker] = true
		speakers = append(speakers, speaker)
	}
	return speakers
}

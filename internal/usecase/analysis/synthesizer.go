package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

const (
	FallbackTitle   = "New Project Launch Planning"
	FallbackSummary = "The team discussed project launch priorities, focusing on user onboarding, marketing timeline, and user testing budget."
)

// TopicKeywords is the summary vocabulary, in reporting order within a line
var TopicKeywords = []string{
	"onboarding",
	"marketing",
	"budget",
	"design",
	"user",
	"timeline",
	"feature",
	"testing",
	"launch",
	"project",
	"decision",
}

// Synopsis is the generated title and summary of a transcript
type Synopsis struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Topics  []string `json:"topics"`
}

// Synthesize builds the title, topics and summary of a transcript
func Synthesize(text string) Synopsis {
	topics := Topics(text)
	return Synopsis{
		Title:   Title(text),
		Summary: Summary(topics),
		Topics:  topics,
	}
}

// Title derives a title from the first line: the segment after its first
// colon (up to any second colon), kept only when strictly between 10 and 60
// characters long.
func Title(text string) string {
	first := transcript.SplitLines(text)[0]

	candidate := first
	if segments := strings.Split(first, ":"); len(segments) > 1 {
		if s := strings.TrimSpace(segments[1]); s != "" {
			candidate = s
		}
	}

	n := utf8.RuneCountInString(candidate)
	if n <= 10 || n >= 60 {
		return FallbackTitle
	}
	return stripTitleMarks(candidate)
}

// stripTitleMarks removes one leading and one trailing quote or period
func stripTitleMarks(s string) string {
	const marks = `'".`
	if s != "" && strings.ContainsRune(marks, rune(s[0])) {
		s = s[1:]
	}
	if s != "" && strings.ContainsRune(marks, rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}
	return s
}

// Topics returns the vocabulary words found in the transcript, in order of
// first occurrence
func Topics(text string) []string {
	var topics []string
	seen := make(map[string]bool, len(TopicKeywords))

	for _, line := range transcript.SplitLines(text) {
		lower := strings.ToLower(line)
		for _, kw := range TopicKeywords {
			if !seen[kw] && strings.Contains(lower, kw) {
				seen[kw] = true
				topics = append(topics, kw)
			}
		}
	}
	return topics
}

// Summary renders the topics into the summary sentence
func Summary(topics []string) string {
	switch len(topics) {
	case 0:
		return FallbackSummary
	case 1:
		return "The team discussed " + topics[0] + " for the project."
	default:
		last := len(topics) - 1
		return "The team discussed " + strings.Join(topics[:last], ", ") + " and " + topics[last] + " for the project."
	}
}

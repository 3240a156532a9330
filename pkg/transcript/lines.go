package transcript

import "strings"

// SplitLines splits a transcript into lines, dropping a trailing carriage
// return from each. Blank lines are kept so callers see the original layout.
func SplitLines(transcript string) []string {
	lines := strings.Split(transcript, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitSpeaker splits "Speaker: text" at the first colon. Both parts are
// trimmed. ok is false when the line has no colon.
func SplitSpeaker(line string) (speaker, text string, ok bool) {
	before, after, found := strings.Cut(line, ":")
	if !found {
		return "", strings.TrimSpace(line), false
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSpeaker(t *testing.T) {
	tests := []struct {
		line    string
		speaker string
		text    string
		ok      bool
	}{
		{"PM: Let's ship", "PM", "Let's ship", true},
		{"Engineer_1: time is 10:30", "Engineer_1", "time is 10:30", true},
		{": no speaker", "", "no speaker", true},
		{"no colon at all", "", "no colon at all", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			speaker, text, ok := SplitSpeaker(tt.line)
			assert.Equal(t, tt.speaker, speaker)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\r\n\nb"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		filename string
		suffix   string
	}{
		{"standup.mp3", "-standup.mp3"},
		{"../../etc/passwd", "-passwd"},
		{`C:\Users\me\call.wav`, "-call.wav"},
		{"", "-upload"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			name := ObjectName("recordings", tt.filename)
			assert.True(t, strings.HasPrefix(name, "recordings/"), name)
			assert.True(t, strings.HasSuffix(name, tt.suffix), name)
		})
	}

	assert.NotEqual(t, ObjectName("recordings", "a.mp3"), ObjectName("recordings", "a.mp3"))
}

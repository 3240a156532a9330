package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		out, _, err := run(t, "speaker,text\nPM,Kickoff\nQA,Tests pass\n", "parse")
		require.NoError(t, err)
		assert.Equal(t, "PM: Kickoff\nQA: Tests pass\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "PM,Kickoff", "parse", "-o", "json")
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, "PM: Kickoff", body["transcription"])
	})

	t.Run("blank input warns", func(t *testing.T) {
		_, stderr, err := run(t, "\n", "parse")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Warning:")
	})

	t.Run("invalid output", func(t *testing.T) {
		_, _, err := run(t, "PM,Kickoff", "parse", "-o", "xml")
		assert.EqualError(t, err, "invalid output format: xml")
	})
}

func TestAnalyzeCommand(t *testing.T) {
	const script = "PM: Kickoff for the billing revamp\nQA: I'll rerun the suite\nPM: Decision made, we ship Friday"

	t.Run("text", func(t *testing.T) {
		out, _, err := run(t, script, "analyze", "--seed", "7")
		require.NoError(t, err)
		assert.Contains(t, out, "Title:    Kickoff for the billing revamp")
		assert.Contains(t, out, "  - Decision made, we ship Friday")
		assert.Contains(t, out, "[QA Team, due April 2")
	})

	t.Run("yaml is reproducible with a seed", func(t *testing.T) {
		first, _, err := run(t, script, "analyze", "--seed", "7", "-o", "yaml")
		require.NoError(t, err)
		second, _, err := run(t, script, "analyze", "--seed", "7", "-o", "yaml")
		require.NoError(t, err)
		assert.Equal(t, first, second)

		var r report
		require.NoError(t, yaml.Unmarshal([]byte(first), &r))
		assert.Equal(t, []string{"PM", "QA"}, r.Speakers)
		assert.False(t, r.Fallback.Decisions)
	})

	t.Run("csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "standup.csv")
		require.NoError(t, os.WriteFile(path, []byte("00:01,PM,Kickoff for the billing revamp\n00:02,QA,I'll rerun the suite"), 0o600))

		out, _, err := run(t, "", "analyze", path, "-o", "json")
		require.NoError(t, err)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, "Kickoff for the billing revamp", r.Title)
		assert.True(t, r.Fallback.Decisions)
		require.Len(t, r.ActionItems, 1)
		assert.Equal(t, "QA Team", r.ActionItems[0].Assignee)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := run(t, "  ", "analyze")
		assert.EqualError(t, err, "transcript is empty")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := run(t, "", "analyze", filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

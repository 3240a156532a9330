package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/pkg/transcript"
)

// Output formats
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type options struct {
	output string
	seed   int64
	csv    bool
}

// report is the printable result of an analysis
type report struct {
	Title       string                         `json:"title" yaml:"title"`
	Summary     string                         `json:"summary" yaml:"summary"`
	Topics      []string                       `json:"topics" yaml:"topics"`
	Speakers    []string                       `json:"speakers" yaml:"speakers"`
	Decisions   []string                       `json:"decisions" yaml:"decisions"`
	ActionItems []analysis.ExtractedActionItem `json:"actionItems" yaml:"actionItems"`
	Fallback    analysis.FallbackUsage         `json:"usedFallback" yaml:"usedFallback"`
	Warning     string                         `json:"warning,omitempty" yaml:"warning,omitempty"`
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "transcriptctl",
		Short:         "Convert and analyze meeting transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputText, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("invalid output format: %s", opts.output)
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json, yaml")

	root.AddCommand(newParseCommand(opts), newAnalyzeCommand(opts))
	return root
}

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Convert a CSV transcript to Speaker: text lines",
		Long: `Convert a CSV transcript (timestamp,speaker,text or speaker,text) into
newline separated "Speaker: text" lines. Reads stdin when no file is given.

Examples:
  transcriptctl parse standup.csv
  cat standup.csv | transcriptctl parse -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result := transcript.ParseCSV(content)
			if opts.output != outputText {
				return render(cmd.OutOrStdout(), opts.output, result)
			}
			if result.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", result.Warning)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Transcript)
			return nil
		},
	}
}

func newAnalyzeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Extract a title, summary, decisions and action items",
		Long: `Analyze a transcript without storing it. Files ending in .csv are
converted first; use --csv when piping CSV through stdin.

Examples:
  transcriptctl analyze notes.txt
  transcriptctl analyze standup.csv --seed 42 -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var warning string
			if opts.csv || strings.EqualFold(filepath.Ext(name), ".csv") {
				parsed := transcript.ParseCSV(content)
				content = parsed.Transcript
				warning = parsed.Warning
			}
			if strings.TrimSpace(content) == "" {
				return fmt.Errorf("transcript is empty")
			}

			r := analyze(content, opts.seed)
			r.Warning = warning

			if opts.output != outputText {
				return render(cmd.OutOrStdout(), opts.output, r)
			}
			printReport(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for generated due dates (0 uses the clock)")
	cmd.Flags().BoolVar(&opts.csv, "csv", false, "Treat the input as CSV")
	return cmd
}

func analyze(text string, seed int64) report {
	synopsis := analysis.Synthesize(text)
	extraction := analysis.NewExtractor(analysis.DefaultRules(), analysis.NewRandomDueDates(seed)).Extract(text)

	return report{
		Title:       synopsis.Title,
		Summary:     synopsis.Summary,
		Topics:      synopsis.Topics,
		Speakers:    analysis.Speakers(text),
		Decisions:   extraction.Decisions,
		ActionItems: extraction.ActionItems,
		Fallback:    extraction.UsedFallback,
	}
}

// readInput returns the content of the named file, or stdin when no file
// (or "-") is given
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("invalid output format: %s", format)
}

func printReport(w io.Writer, r report) {
	if r.Warning != "" {
		fmt.Fprintf(w, "Warning: %s\n\n", r.Warning)
	}
	fmt.Fprintf(w, "Title:    %s\n", r.Title)
	fmt.Fprintf(w, "Summary:  %s\n", r.Summary)
	if len(r.Speakers) > 0 {
		fmt.Fprintf(w, "Speakers: %s\n", strings.Join(r.Speakers, ", "))
	}

	fmt.Fprintln(w, "\nDecisions:")
	if r.Fallback.Decisions {
		fmt.Fprintln(w, "  (none found, showing defaults)")
	}
	for _, d := range r.Decisions {
		fmt.Fprintf(w, "  - %s\n", d)
	}

	fmt.Fprintln(w, "\nAction items:")
	if r.Fallback.ActionItems {
		fmt.Fprintln(w, "  (none found, showing defaults)")
	}
	for _, a := range r.ActionItems {
		fmt.Fprintf(w, "  - %s [%s, due %s]\n", a.Task, a.Assignee, a.DueDate)
	}
}

package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	history bool
	format  forecast.Format
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the milestones of the forecast" }
func (*summaryCmd) Usage() string {
	return `fcs summary [-history] [-format markdown|json]

  Displays when the passive income goal is reached, when the loans are
  repaid, the peak and final equity and the net income statistics.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.history, "history", false, "Start the forecast at the earliest purchase year.")
	f.Var(&c.format, "format", "Output format (markdown, json).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.history {
		p = p.WithHistory()
	}

	summary := forecast.Summarize(forecast.Forecast(p, s))

	switch c.format {
	case forecast.Markdown:
		printMarkdown(renderer.SummaryMarkdown(renderer.NewSummary(p, summary)))
	case forecast.JSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding the summary: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format %v\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/renderer"
	"github.com/google/subcommands"
)

// yearCmd holds the flags for the 'year' subcommand.
type yearCmd struct {
	history bool
	format  forecast.Format
}

func (*yearCmd) Name() string     { return "year" }
func (*yearCmd) Synopsis() string { return "detail the forecast of a single year, asset by asset" }
func (*yearCmd) Usage() string {
	return `fcs year [-history] [-format markdown|json] <year>

  Prints the totals of a forecast year and the breakdown of every asset held
  that year, including the phase of its loan.
`
}

func (c *yearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.history, "history", false, "Start the forecast at the earliest purchase year.")
	f.Var(&c.format, "format", "Output format (markdown, json).")
}

func (c *yearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one year")
		return subcommands.ExitUsageError
	}
	year, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid year %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	p, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.history {
		p = p.WithHistory()
	}

	r, ok := forecast.FindYear(forecast.Forecast(p, s), year)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: year %d is outside the forecast %d-%d\n", year, p.Start(), p.Start()+p.Years()-1)
		return subcommands.ExitFailure
	}

	switch c.format {
	case forecast.Markdown:
		printMarkdown(renderer.YearMarkdown(p, r))
	case forecast.JSON:
		if err := forecast.EncodeJSON(stdout, []forecast.Result{r}); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding year %d: %v\n", year, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format %v\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

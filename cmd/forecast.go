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

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	from    int
	years   int
	horizon int
	start   int
	history bool
	path    string
	format  forecast.Format
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "forecast the portfolio year by year" }
func (*forecastCmd) Usage() string {
	return `fcs forecast [-from <year>] [-years <n>] [-horizon <n>] [-history] [-format markdown|json|msgpack] [-path <jsonpath>]

  Forecasts the profile over its horizon and prints one line per year:
  income, expenses, principal repaid, cash flow, asset values, loan balances
  and equity.

Usage Examples:
# The next ten years.
$ fcs forecast -years 10

# Net income of the first year as JSON.
$ fcs forecast -path '$[0].netIncome'
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.from, "from", 0, "First year to print. Defaults to the first forecast year.")
	f.IntVar(&c.years, "years", 0, "Number of years to print. Defaults to the profile yearsToGoal for tables, all of them otherwise.")
	f.IntVar(&c.horizon, "horizon", 0, "Number of forecast years, overrides the profile horizon.")
	f.IntVar(&c.start, "start", 0, "First forecast year, overrides the profile start year.")
	f.BoolVar(&c.history, "history", false, "Start the forecast at the earliest purchase year.")
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting values in the results, printed as JSON.")
	f.Var(&c.format, "format", "Output format (markdown, json, msgpack).")
}

// profile applies the command flags to p.
func (c *forecastCmd) profile(p forecast.Profile) forecast.Profile {
	if c.history {
		p = p.WithHistory()
	}
	if c.start != 0 {
		p.StartYear = c.start
	}
	if c.horizon > 0 {
		p.Horizon = c.horizon
	}
	return p
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	p = c.profile(p)

	years := c.years
	if years == 0 && c.format == forecast.Markdown && c.path == "" {
		// the table stops at the goal, when the profile expects one.
		years = p.YearsToGoal
	}
	results := renderer.Window(forecast.Forecast(p, s), c.from, years)

	if c.path != "" {
		v, err := forecast.Query(results, c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
			return subcommands.ExitUsageError
		}
		out, err := json.Marshal(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding %q: %v\n", c.path, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
		return subcommands.ExitSuccess
	}

	var err error
	switch c.format {
	case forecast.JSON:
		err = forecast.EncodeJSON(stdout, results)
	case forecast.Msgpack:
		err = forecast.EncodeMsgpack(stdout, results)
	default:
		printMarkdown(renderer.ForecastMarkdown(p, results))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding the forecast: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

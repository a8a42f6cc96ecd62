package cmd

import (
	"context"
	"flag"

	"github.com/etnz/forecast"
	"github.com/etnz/forecast/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the assets of the profile with their resolved parameters" }
func (*assetsCmd) Usage() string {
	return `fcs assets

  Lists the visible assets of the profile, after the defaults of the settings
  have been applied: purchase, growth rates, loan and its terms.
`
}

func (*assetsCmd) SetFlags(f *flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.AssetsMarkdown(p, forecast.Normalize(p.Assets, s)))
	return subcommands.ExitSuccess
}

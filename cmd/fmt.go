package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/forecast"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "formats the profile file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fcs fmt [-w]

  Reads the profile, in any of its historical shapes, resolves every default
  of its assets, assigns their stable IDs, and prints it back in the
  canonical JSON form. Hidden assets are dropped.

Usage Examples:
# Rewrites the default profile file in place.
$ fcs fmt -w

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.write, "w", false, "Write the result to the profile file instead of the standard output.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	profile.Assets = forecast.Normalize(profile.Assets, s)

	var buf bytes.Buffer
	if err := forecast.EncodeProfile(&buf, profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
		return subcommands.ExitFailure
	}

	if !p.write {
		stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}

	if err := os.WriteFile(*profileFile, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted profile %q: %v\n", *profileFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", *profileFile)
	return subcommands.ExitSuccess
}

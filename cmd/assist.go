package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/forecast/agent"
	"github.com/etnz/forecast/logger"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// AssistCmd is the subcommand for the AI assistant.
type AssistCmd struct {
	model string
}

// Name returns the name of the command.
func (*AssistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*AssistCmd) Synopsis() string { return "Start an interactive session about the forecast with the AI assistant." }

// Usage returns a long-form usage string.
func (*AssistCmd) Usage() string {
	return `fcs assist [-model <model>] [<question>]

  Start an interactive session with the AI assistant, about the forecast of
  the profile. The Gemini client reads its credentials from the environment
  (GEMINI_API_KEY or GOOGLE_API_KEY).
`
}

// SetFlags sets the flags for the command.
func (c *AssistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", cfg.Model, "Gemini model of the experts.")
}

// Execute executes the command.
func (c *AssistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	p, s, status := load()
	if status != subcommands.ExitSuccess {
		return status
	}
	logger.SetGlobalLogger(newLogger())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(c.model, p, s)
	economist := agent.NewEconomist(c.model)
	a := agent.New(stdout, os.Stdin, c.model, analyst, economist)
	a.Print = func(w io.Writer, answer string) { printMarkdown(answer + "\n") }

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

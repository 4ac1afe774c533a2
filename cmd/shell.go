package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

// Prompt is printed before each shell command.
const Prompt = "cfo> "

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive session (default)" }
func (*shellCmd) Usage() string {
	return `cfo shell

  Reads commands from the standard input, one per line, until "quit" or the
  end of input. The portfolio, alerts and notifications live as long as the
  session. Type "help" for the list of commands.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return RunShell(ctx, appFrom(args))
}

// RunShell runs the interactive session of a.
func RunShell(ctx context.Context, a *App) subcommands.ExitStatus {
	a.infof("cryptofolio: type \"help\" for the commands, \"topic\" for the documentation, \"quit\" to exit.")
	scanner := bufio.NewScanner(a.In)
	for {
		fmt.Fprint(a.Out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "quit" || fields[0] == "exit" {
			return subcommands.ExitSuccess
		}
		a.run(ctx, fields)
		a.afterCommand(ctx)
	}
	fmt.Fprintln(a.Out)
	if err := scanner.Err(); err != nil {
		a.errorf("reading input: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run executes a single shell command line.
func (a *App) run(ctx context.Context, fields []string) subcommands.ExitStatus {
	f := flag.NewFlagSet("cfo", flag.ContinueOnError)
	f.SetOutput(a.Err)
	c := subcommands.NewCommander(f, "")
	c.Output, c.Error = a.Out, a.Err
	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")
	registerSession(c)

	if err := f.Parse(fields); err != nil {
		return subcommands.ExitUsageError
	}
	return c.Execute(ctx, a)
}

// Command cfo tracks a cryptocurrency portfolio against live prices.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cryptofolio/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env file is fine.
	_ = godotenv.Load()

	cmd.Completion().Complete("cfo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := context.Background()
	app := cmd.NewApp()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunShell(ctx, app)))
	}
	os.Exit(int(commander.Execute(ctx, app)))
}

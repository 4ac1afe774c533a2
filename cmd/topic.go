package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cryptofolio/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Shows the documentation of the given topics, "*" for all of them, or the
  list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if f.NArg() == 0 {
		a.printMarkdown(docs.Readme())
		return subcommands.ExitSuccess
	}
	doc, err := docs.GetTopics(f.Args()...)
	if err != nil {
		a.errorf("reading doc: %v", err)
		return subcommands.ExitFailure
	}
	a.printMarkdown(doc)
	return subcommands.ExitSuccess
}

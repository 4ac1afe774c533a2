package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

type saveCmd struct{}

func (*saveCmd) Name() string     { return "save" }
func (*saveCmd) Synopsis() string { return "save the portfolio to the portfolio file" }
func (*saveCmd) Usage() string {
	return `save

  Writes the holdings to the portfolio file (see the -portfolio-file flag).
  Alerts and notifications are not saved.
`
}

func (c *saveCmd) SetFlags(f *flag.FlagSet) {}

func (c *saveCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if err := cryptofolio.SavePortfolio(a.PortfolioFile, a.Session.Portfolio); err != nil {
		a.errorf("saving portfolio: %v", err)
		return subcommands.ExitFailure
	}
	a.infof("Portfolio saved to %s.", a.PortfolioFile)
	return subcommands.ExitSuccess
}

type loadCmd struct{}

func (*loadCmd) Name() string     { return "load" }
func (*loadCmd) Synopsis() string { return "replace the portfolio with the saved one" }
func (*loadCmd) Usage() string {
	return `load

  Replaces the holdings of the session with the ones of the portfolio file.
  Nothing changes when there is no saved portfolio.
`
}

func (c *loadCmd) SetFlags(f *flag.FlagSet) {}

func (c *loadCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	p, err := cryptofolio.LoadPortfolio(a.PortfolioFile)
	if errors.Is(err, cryptofolio.ErrNoSavedPortfolio) {
		a.infof("No saved portfolio found.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		a.errorf("loading portfolio: %v", err)
		return subcommands.ExitFailure
	}
	a.Session.Portfolio.Replace(p)
	a.infof("Portfolio loaded from %s.", a.PortfolioFile)
	a.showDashboard(ctx)
	return subcommands.ExitSuccess
}

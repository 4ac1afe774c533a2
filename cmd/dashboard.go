package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio with current prices" }
func (*dashboardCmd) Usage() string {
	return `dashboard

  Displays every holding with its current price, value and market
  capitalisation, and the total value of the priced holdings.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	appFrom(args).showDashboard(ctx)
	return subcommands.ExitSuccess
}

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove holdings from the portfolio" }
func (*removeCmd) Usage() string {
	return `remove <id>...

  Removes the holdings of the given coins, whatever their quantity.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if f.NArg() == 0 {
		a.errorf("remove requires at least one coin id")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if !a.Session.Portfolio.Remove(id) {
			a.warnf("%q is not in the portfolio", id)
			status = subcommands.ExitFailure
		}
	}
	a.showDashboard(ctx)
	return status
}

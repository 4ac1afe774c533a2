package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

type addCmd struct {
	coin     string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a quantity of a coin to the portfolio" }
func (*addCmd) Usage() string {
	return `add -coin <id|symbol> [-q <quantity>]

  Adds a quantity of a coin to the portfolio. The quantity accumulates with
  the one already held. The coin is designated by its CoinGecko id, or by
  its symbol when no other coin shares it.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "coin id or symbol, see the coins command")
	f.StringVar(&c.quantity, "q", "1.0", "quantity to add, strictly positive")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if c.coin == "" && f.NArg() > 0 {
		c.coin = f.Arg(0)
	}
	if c.coin == "" {
		a.errorf("add requires a coin, use -coin")
		return subcommands.ExitUsageError
	}
	q, err := cryptofolio.ParseQuantity(c.quantity)
	if err != nil {
		a.errorf("invalid quantity %q: %v", c.quantity, err)
		return subcommands.ExitUsageError
	}
	if !q.IsPositive() {
		a.errorf("invalid quantity %s: %v", q, cryptofolio.ErrInvalidQuantity)
		return subcommands.ExitUsageError
	}

	asset, err := a.resolve(ctx, c.coin)
	if err != nil {
		a.errorf("%v", err)
		return subcommands.ExitFailure
	}
	if err := a.Session.Portfolio.Add(asset.ID, q); err != nil {
		a.errorf("%v", err)
		return subcommands.ExitUsageError
	}
	total, _ := a.Session.Portfolio.Quantity(asset.ID)
	a.infof("Added %s %s, now holding %s.", q, asset.Label(), total)
	a.showDashboard(ctx)
	return subcommands.ExitSuccess
}

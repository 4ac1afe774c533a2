package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type coinsCmd struct {
	query string
	max   int
}

func (*coinsCmd) Name() string     { return "coins" }
func (*coinsCmd) Synopsis() string { return "list the coins that can be tracked" }
func (*coinsCmd) Usage() string {
	return `coins [-q <filter>] [-n <max>]

  Lists the CoinGecko catalog, optionally filtered by id, symbol or name.
  The catalog is cached for one hour.
`
}

func (c *coinsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "case insensitive filter on id, symbol or name")
	f.IntVar(&c.max, "n", 20, "maximum number of coins to display, 0 for all")
}

func (c *coinsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if c.query == "" && f.NArg() > 0 {
		c.query = f.Arg(0)
	}
	catalog, err := a.Market.ListAssets(ctx)
	if err != nil {
		a.errorf("listing coins: %v", err)
		return subcommands.ExitFailure
	}
	matches := filterAssets(catalog, c.query)
	shown := matches
	if c.max > 0 && len(shown) > c.max {
		shown = shown[:c.max]
	}
	a.printMarkdown(renderer.CatalogMarkdown(shown, len(matches)))
	return subcommands.ExitSuccess
}

func filterAssets(catalog []cryptofolio.Asset, query string) []cryptofolio.Asset {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return catalog
	}
	var matches []cryptofolio.Asset
	for _, asset := range catalog {
		if strings.Contains(asset.ID, query) ||
			strings.Contains(strings.ToLower(asset.Symbol), query) ||
			strings.Contains(strings.ToLower(asset.Name), query) {
			matches = append(matches, asset)
		}
	}
	return matches
}

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the current price of coins" }
func (*priceCmd) Usage() string {
	return `price [<id>...]

  Displays the current USD price and market capitalisation of the given
  coins, or of the portfolio holdings when none is given.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	ids := f.Args()
	if len(ids) == 0 {
		ids = a.Session.Portfolio.IDs()
	}
	if len(ids) == 0 {
		a.errorf("price requires a coin id")
		return subcommands.ExitUsageError
	}
	a.printMarkdown(renderer.QuotesMarkdown(ids, a.quotes(ctx, ids)))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	coin   string
	period string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "chart the price history of a coin" }
func (*historyCmd) Usage() string {
	return `history [-coin <id|symbol>] [-p 7d|30d|90d|1y]

  Charts the USD price of a coin over the lookback period, with its current
  price, starting price and change. Defaults to the first holding.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "coin id or symbol, defaults to the first holding")
	f.StringVar(&c.period, "p", cryptofolio.Week.Flag(), "lookback period: 7d, 30d, 90d or 1y")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	lookback, err := cryptofolio.ParseLookback(c.period)
	if err != nil {
		a.errorf("%v", err)
		return subcommands.ExitUsageError
	}
	if c.coin == "" && f.NArg() > 0 {
		c.coin = f.Arg(0)
	}
	id := c.coin
	if id == "" {
		ids := a.Session.Portfolio.IDs()
		if len(ids) == 0 {
			a.errorf("history requires a coin, use -coin")
			return subcommands.ExitUsageError
		}
		id = ids[0]
	} else {
		asset, err := a.resolve(ctx, id)
		if err != nil {
			a.errorf("%v", err)
			return subcommands.ExitFailure
		}
		id = asset.ID
	}

	series, err := a.Market.History(ctx, id, lookback.Days())
	if err != nil {
		a.warnf("cannot fetch the price history of %s: %v", id, err)
	}
	a.printMarkdown(renderer.HistoryMarkdown(id, lookback, series))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type alertCmd struct {
	coin      string
	direction string
	price     string
}

func (*alertCmd) Name() string     { return "alert" }
func (*alertCmd) Synopsis() string { return "set a price alert on a holding" }
func (*alertCmd) Usage() string {
	return `alert -coin <id> -type above|below [-price <usd>]

  Sets an alert that fires once when the price of the coin goes strictly
  above or below the threshold. The threshold defaults to the current price.
  Only coins of the portfolio can be watched.
`
}

func (c *alertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "coin id or symbol of a holding")
	f.StringVar(&c.direction, "type", "above", "above or below")
	f.StringVar(&c.price, "price", "", "threshold in USD, defaults to the current price")
}

func (c *alertCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	if c.coin == "" {
		a.errorf("alert requires a coin, use -coin")
		return subcommands.ExitUsageError
	}
	d, err := cryptofolio.ParseDirection(c.direction)
	if err != nil {
		a.errorf("%v", err)
		return subcommands.ExitUsageError
	}
	id := c.coin
	if !a.Session.Portfolio.Has(id) {
		asset, err := a.resolve(ctx, id)
		if err != nil {
			a.errorf("%v", err)
			return subcommands.ExitFailure
		}
		id = asset.ID
	}
	if !a.Session.Portfolio.Has(id) {
		a.errorf("%s is not in the portfolio, add it first", id)
		return subcommands.ExitFailure
	}

	var threshold cryptofolio.Money
	if c.price == "" {
		quote, ok := a.quotes(ctx, []string{id})[id]
		if !ok {
			a.errorf("no current price for %s, set the threshold with -price", id)
			return subcommands.ExitFailure
		}
		threshold = quote.Price
	} else {
		v, err := decimal.NewFromString(c.price)
		if err != nil || !v.IsPositive() {
			a.errorf("invalid price %q: must be a positive number", c.price)
			return subcommands.ExitUsageError
		}
		threshold = cryptofolio.M(v)
	}

	alert := a.Session.Alerts.Add(id, d, threshold, a.Now())
	a.infof("Alert %s set: %s %s %s.", alert.ShortID(), id, strings.ToLower(d.String()), threshold)
	return subcommands.ExitSuccess
}

type alertsCmd struct{}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "list price alerts" }
func (*alertsCmd) Usage() string {
	return `alerts

  Lists the price alerts of the session, triggered ones included.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {}

func (c *alertsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	a.printMarkdown(renderer.AlertsMarkdown(a.Session.Alerts.List()))
	return subcommands.ExitSuccess
}

type clearAlertsCmd struct{}

func (*clearAlertsCmd) Name() string     { return "clear-alerts" }
func (*clearAlertsCmd) Synopsis() string { return "remove every price alert" }
func (*clearAlertsCmd) Usage() string {
	return `clear-alerts
`
}

func (c *clearAlertsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearAlertsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	n := a.Session.Alerts.Len()
	a.Session.Alerts.Clear()
	a.infof("%d alert(s) removed.", n)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type notificationsCmd struct{}

func (*notificationsCmd) Name() string     { return "notifications" }
func (*notificationsCmd) Synopsis() string { return "display notifications and mark them read" }
func (*notificationsCmd) Usage() string {
	return `notifications

  Lists the notifications of the session. New ones are flagged, then
  everything is marked as read.
`
}

func (c *notificationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *notificationsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	a.printMarkdown(renderer.NotificationsMarkdown(a.Session.Notifications.List()))
	a.Session.Notifications.MarkRead()
	return subcommands.ExitSuccess
}

type clearNotificationsCmd struct{}

func (*clearNotificationsCmd) Name() string     { return "clear-notifications" }
func (*clearNotificationsCmd) Synopsis() string { return "remove every notification" }
func (*clearNotificationsCmd) Usage() string {
	return `clear-notifications
`
}

func (c *clearNotificationsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearNotificationsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	a.Session.Notifications.Clear()
	a.infof("Notifications cleared.")
	return subcommands.ExitSuccess
}

type settingsCmd struct {
	priceAlerts      bool
	portfolioChanges bool
	save             bool
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "display or change notification settings" }
func (*settingsCmd) Usage() string {
	return `settings [-price-alerts=true|false] [-portfolio-changes=true|false] [-save]

  Displays the notification settings after applying the given changes.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.priceAlerts, "price-alerts", true, "evaluate price alerts, they stay active when off")
	f.BoolVar(&c.portfolioChanges, "portfolio-changes", true, "notify when the portfolio value changes")
	f.BoolVar(&c.save, "save", false, "write the settings to the settings file")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	a := appFrom(args)
	s := &a.Session.Settings
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "price-alerts":
			s.PriceAlerts = c.priceAlerts
		case "portfolio-changes":
			s.PortfolioChanges = c.portfolioChanges
		}
	})
	if c.save {
		if err := cryptofolio.SaveSettings(a.SettingsFile, *s); err != nil {
			a.errorf("%v", err)
			return subcommands.ExitFailure
		}
		a.infof("Settings saved to %s.", a.SettingsFile)
	}
	a.printMarkdown(renderer.SettingsMarkdown(*s))
	return subcommands.ExitSuccess
}

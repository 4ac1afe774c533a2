package cmd

import (
	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register the top level subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "")

	c.Register(&coinsCmd{}, "market")
	c.Register(&priceCmd{}, "market")
	c.Register(&historyCmd{}, "market")

	c.Register(&topicCmd{}, "help")
}

// registerSession registers the commands available in the shell.
func registerSession(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "portfolio")
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&saveCmd{}, "portfolio")
	c.Register(&loadCmd{}, "portfolio")

	c.Register(&coinsCmd{}, "market")
	c.Register(&priceCmd{}, "market")
	c.Register(&historyCmd{}, "market")

	c.Register(&alertCmd{}, "alerts")
	c.Register(&alertsCmd{}, "alerts")
	c.Register(&clearAlertsCmd{}, "alerts")
	c.Register(&notificationsCmd{}, "alerts")
	c.Register(&clearNotificationsCmd{}, "alerts")
	c.Register(&settingsCmd{}, "alerts")

	c.Register(&topicCmd{}, "help")
}

func lookbacks() predict.Set {
	var set predict.Set
	for _, l := range cryptofolio.Lookbacks {
		set = append(set, l.Flag())
	}
	return set
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"shell": {},
			"coins": {Flags: map[string]complete.Predictor{
				"q": predict.Something,
				"n": predict.Something,
			}},
			"price": {Args: predict.Something},
			"history": {Flags: map[string]complete.Predictor{
				"coin": predict.Something,
				"p":    lookbacks(),
			}},
			"topic":    {Args: predict.Set(docs.GetAllTopics())},
			"help":     {Args: predict.Set{"shell", "coins", "price", "history", "topic"}},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
			"settings-file":  predict.Files("*.yaml"),
			"api-url":        predict.Something,
			"plain":          predict.Nothing,
			"v":              predict.Nothing,
		},
	}
}

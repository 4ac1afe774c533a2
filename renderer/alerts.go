package renderer

import (
	"bytes"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// AlertsMarkdown renders the table of price alerts, triggered ones included.
func AlertsMarkdown(alerts []cryptofolio.Alert) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Active Alerts")
	blank(doc)
	if len(alerts) == 0 {
		doc.PlainText("No price alerts set.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"ID", "Coin", "Type", "Price Threshold", "Status", "Created"},
		Rows:      [][]string{},
	}
	for _, a := range alerts {
		table.Rows = append(table.Rows, []string{a.ShortID(), a.Asset, a.Direction.String(), a.Threshold.String(), a.Status(), a.Created.Format(cryptofolio.TimeFormat)})
	}
	doc.Table(table)
	return doc.String()
}

// SettingsMarkdown renders the notification settings.
func SettingsMarkdown(s cryptofolio.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Notification Settings")
	blank(doc)
	doc.BulletList(
		"Notify on price alerts: "+onOff(s.PriceAlerts),
		"Notify on portfolio value changes: "+onOff(s.PortfolioChanges),
	)
	return doc.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

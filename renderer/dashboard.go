package renderer

import (
	"bytes"
	"strings"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the portfolio dashboard.
func DashboardMarkdown(d cryptofolio.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Your Portfolio")
	blank(doc)

	if d.IsEmpty() {
		doc.PlainText("Your portfolio is empty. Add coins with `add` or load a saved portfolio with `load`.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Coin ID", "Quantity", "Current Price (USD)", "Value (USD)", "Market Cap (USD)"},
		Rows:   [][]string{},
	}
	for _, row := range d.Rows {
		price, value, mcap := na, na, na
		if row.Priced {
			price = row.Price.String()
			value = row.Value.String()
			if !row.MarketCap.IsZero() {
				mcap = row.MarketCap.Rounded()
			}
		}
		table.Rows = append(table.Rows, []string{row.ID, row.Quantity.String(), price, value, mcap})
	}
	doc.Table(table)
	blank(doc)

	doc.H2("Total Portfolio Value: " + d.Total.String())
	if len(d.Excluded) > 0 {
		blank(doc)
		doc.PlainText("> No current price for " + strings.Join(d.Excluded, ", ") + ": not counted in the total.")
	}
	return doc.String()
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// CatalogMarkdown renders a page of the asset catalog. total is the number
// of assets that matched before truncation.
func CatalogMarkdown(assets []cryptofolio.Asset, total int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Coins")
	blank(doc)
	if len(assets) == 0 {
		doc.PlainText("No coin found.")
		return doc.String()
	}
	table := md.TableSet{
		Header: []string{"Coin ID", "Symbol", "Name"},
		Rows:   [][]string{},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{a.ID, a.Symbol, a.Name})
	}
	doc.Table(table)
	if total > len(assets) {
		blank(doc)
		doc.PlainText(fmt.Sprintf("Showing %d of %d coins.", len(assets), total))
	}
	return doc.String()
}

// QuotesMarkdown renders the current quotes of ids, in that order.
func QuotesMarkdown(ids []string, quotes map[string]cryptofolio.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Current Prices")
	blank(doc)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Coin ID", "Current Price (USD)", "Market Cap (USD)"},
		Rows:      [][]string{},
	}
	for _, id := range ids {
		price, mcap := na, na
		if q, ok := quotes[id]; ok {
			price = q.Price.String()
			if !q.MarketCap.IsZero() {
				mcap = q.MarketCap.Rounded()
			}
		}
		table.Rows = append(table.Rows, []string{id, price, mcap})
	}
	doc.Table(table)
	return doc.String()
}

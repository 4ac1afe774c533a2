package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cryptofolio"
	"github.com/guptarohit/asciigraph"
	md "github.com/nao1215/markdown"
)

// chart dimensions, in terminal cells.
const (
	chartHeight = 12
	chartWidth  = 64
)

// HistoryMarkdown renders the price chart of an asset over a lookback
// window, followed by its current price, starting price and change.
func HistoryMarkdown(asset string, lookback cryptofolio.Lookback, series cryptofolio.Series) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s Price (USD) - Last %s", capitalize(asset), lookback))
	blank(doc)

	summary, ok := series.Summary()
	if !ok {
		doc.PlainText(fmt.Sprintf("No price data for %s over the last %s.", asset, lookback))
		return doc.String()
	}

	if len(series) > 1 {
		caption := fmt.Sprintf("%s to %s", series[0].Time.Format("2006-01-02 15:04"), series[len(series)-1].Time.Format("2006-01-02 15:04"))
		chart := asciigraph.Plot(series.Prices(),
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(caption),
		)
		fenced(doc, "text", chart)
		blank(doc)
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Current Price", "Starting Price", "Change"},
		Rows: [][]string{{
			summary.Current.String(),
			summary.Start.String(),
			summary.Change.String(),
		}},
	})
	return doc.String()
}

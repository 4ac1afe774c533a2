// Package coingecko implements a cryptofolio.PriceSource on top of the
// public CoinGecko API (v3).
//
// Every call is a single unauthenticated GET. Nothing is retried: failures
// are returned to the caller together with an empty result.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cryptofolio"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the public CoinGecko API.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// CatalogTTL is how long the asset catalog is kept in the local cache.
const CatalogTTL = time.Hour

// ErrUnexpectedResponse is returned when a payload does not have the
// expected shape.
var ErrUnexpectedResponse = errors.New("unexpected response")

// Client queries the CoinGecko API.
type Client struct {
	base    string
	client  *http.Client // prices and history, never cached
	catalog *http.Client // asset catalog, cached for CatalogTTL
}

var _ cryptofolio.PriceSource = (*Client)(nil)

// NewClient returns a client for the API rooted at base, like
// DefaultBaseURL. The catalog is cached in the user temporary directory.
func NewClient(base string) *Client {
	return &Client{
		base:    strings.TrimSuffix(base, "/"),
		client:  new(http.Client),
		catalog: newCachingClient(filepath.Join(os.TempDir(), "cryptofolio"), CatalogTTL),
	}
}

// ListAssets returns the catalog of all assets known by CoinGecko.
func (c *Client) ListAssets(ctx context.Context) ([]cryptofolio.Asset, error) {
	// https://api.coingecko.com/api/v3/coins/list
	// [
	//   {
	//     "id": "bitcoin",
	//     "symbol": "btc",
	//     "name": "Bitcoin"
	//   },
	addr := c.base + "/coins/list"

	content := make([]cryptofolio.Asset, 0)
	if err := jwget(ctx, c.catalog, addr, &content); err != nil {
		return []cryptofolio.Asset{}, fmt.Errorf("error fetching coin list: %w", err)
	}
	// ignore entries that cannot be referenced.
	content = slices.DeleteFunc(content, func(a cryptofolio.Asset) bool { return a.ID == "" })
	return content, nil
}

// CurrentPrices returns the USD price and market cap of the given assets, in
// one batched request. An empty list of ids returns an empty map without
// any request.
func (c *Client) CurrentPrices(ctx context.Context, ids []string) (map[string]cryptofolio.Quote, error) {
	quotes := make(map[string]cryptofolio.Quote)
	if len(ids) == 0 {
		return quotes, nil
	}
	// https://api.coingecko.com/api/v3/simple/price?ids=bitcoin,ethereum&vs_currencies=usd&include_market_cap=true
	// {
	//   "bitcoin": {
	//     "usd": 67187.34,
	//     "usd_market_cap": 1322123456789.12
	//   },
	ids = slices.Clone(ids)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	values := url.Values{}
	values.Set("ids", strings.Join(ids, ","))
	values.Set("vs_currencies", "usd")
	values.Set("include_market_cap", "true")
	addr := c.base + "/simple/price?" + values.Encode()

	type Info struct {
		USD       *decimal.Decimal `json:"usd"`
		MarketCap *decimal.Decimal `json:"usd_market_cap"`
	}
	content := make(map[string]Info)
	if err := jwget(ctx, c.client, addr, &content); err != nil {
		return quotes, fmt.Errorf("error fetching prices: %w", err)
	}
	for id, info := range content {
		if info.USD == nil {
			// without a price the asset is reported as unpriced.
			continue
		}
		q := cryptofolio.Quote{Price: cryptofolio.M(*info.USD)}
		if info.MarketCap != nil {
			q.MarketCap = cryptofolio.M(*info.MarketCap)
		}
		quotes[id] = q
	}
	return quotes, nil
}

// History returns the USD price samples of asset id over the last days.
func (c *Client) History(ctx context.Context, id string, days int) (cryptofolio.Series, error) {
	// https://api.coingecko.com/api/v3/coins/bitcoin/market_chart?vs_currency=usd&days=7
	// {
	//   "prices": [
	//     [1711843200000, 69702.30],
	//     [1711846800000, 69815.12],
	//   ],
	//   "market_caps": [...],
	//   "total_volumes": [...]
	// }
	values := url.Values{}
	values.Set("vs_currency", "usd")
	values.Set("days", strconv.Itoa(days))
	addr := fmt.Sprintf("%s/coins/%s/market_chart?%s", c.base, url.PathEscape(id), values.Encode())

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return cryptofolio.Series{}, fmt.Errorf("error fetching historical data: %w", err)
	}
	series, err := parseSeries(jobj)
	if err != nil {
		return cryptofolio.Series{}, fmt.Errorf("error fetching historical data: %w", err)
	}
	return series, nil
}

// parseSeries extracts the list of [timestamp, price] pairs from a decoded
// market_chart payload.
func parseSeries(jobj any) (cryptofolio.Series, error) {
	const path = "$.prices"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: %q %v", ErrUnexpectedResponse, path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a list", ErrUnexpectedResponse, path)
	}
	series := make(cryptofolio.Series, 0, len(jlist))
	for i, jpoint := range jlist {
		pair, ok := jpoint.([]any)
		if !ok || len(pair) < 2 {
			return nil, fmt.Errorf("%w: sample %d is not a [timestamp, price] pair", ErrUnexpectedResponse, i)
		}
		ts, err := number(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d timestamp: %v", ErrUnexpectedResponse, i, err)
		}
		price, err := number(pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d price: %v", ErrUnexpectedResponse, i, err)
		}
		series = append(series, cryptofolio.Sample{
			Time:  time.UnixMilli(ts.IntPart()).UTC(),
			Price: cryptofolio.M(price),
		})
	}
	return series, nil
}

// number converts a decoded JSON number into a decimal.
func number(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", v)
	}
}

package cryptofolio

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAsset is returned when an asset cannot be found in the catalog.
var ErrUnknownAsset = errors.New("unknown asset")

// Asset is an entry of the catalog of tradable assets.
type Asset struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Label returns the display name of the asset, like "Bitcoin (btc)", or its
// id when the name is unknown.
func (a Asset) Label() string {
	if a.Name == "" {
		return a.ID
	}
	return a.Name + " (" + a.Symbol + ")"
}

// Quote is the current market data of an asset.
type Quote struct {
	Price     Money
	MarketCap Money // zero when not provided
}

// PriceSource gives access to remote market data.
//
// Implementations never return nil results: on failure they return an empty
// result together with the error, so that callers can show the error and
// keep on rendering.
type PriceSource interface {
	// ListAssets returns the catalog of all tradable assets.
	ListAssets(ctx context.Context) ([]Asset, error)
	// CurrentPrices returns the quotes of the given assets. Assets without a
	// price are absent from the result.
	CurrentPrices(ctx context.Context, ids []string) (map[string]Quote, error)
	// History returns the price samples of the last days.
	History(ctx context.Context, id string, days int) (Series, error)
}

// ResolveAsset finds the asset designated by query in catalog. The query
// matches an asset id exactly, or a symbol (case insensitive) when only one
// asset has it.
func ResolveAsset(catalog []Asset, query string) (Asset, error) {
	query = strings.TrimSpace(query)
	var bySymbol []Asset
	for _, a := range catalog {
		if a.ID == query {
			return a, nil
		}
		if strings.EqualFold(a.Symbol, query) {
			bySymbol = append(bySymbol, a)
		}
	}
	switch len(bySymbol) {
	case 0:
		return Asset{}, fmt.Errorf("%q: %w", query, ErrUnknownAsset)
	case 1:
		return bySymbol[0], nil
	}
	ids := make([]string, len(bySymbol))
	for i, a := range bySymbol {
		ids[i] = a.ID
	}
	return Asset{}, fmt.Errorf("symbol %q is ambiguous, use one of %s", query, strings.Join(ids, ", "))
}

package cryptofolio

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrInvalidQuantity is returned when adding a non positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be greater than 0")

// Portfolio maps asset identifiers to the quantity held.
// Its zero value is not ready to use, see NewPortfolio.
type Portfolio struct {
	holdings map[string]Quantity
	rev      int // incremented on every mutation
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]Quantity)}
}

// Add accumulates q into the holding of asset id, creating it if needed.
func (p *Portfolio) Add(id string, q Quantity) error {
	if !q.IsPositive() {
		return fmt.Errorf("cannot add %s of %q: %w", q, id, ErrInvalidQuantity)
	}
	p.holdings[id] = p.holdings[id].Add(q)
	p.rev++
	return nil
}

// Remove deletes the holding of asset id. It reports whether there was one.
func (p *Portfolio) Remove(id string) bool {
	if _, ok := p.holdings[id]; !ok {
		return false
	}
	delete(p.holdings, id)
	p.rev++
	return true
}

// Quantity returns the quantity held for asset id.
func (p *Portfolio) Quantity(id string) (Quantity, bool) {
	q, ok := p.holdings[id]
	return q, ok
}

// Has reports whether asset id is held.
func (p *Portfolio) Has(id string) bool {
	_, ok := p.holdings[id]
	return ok
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int { return len(p.holdings) }

// IsEmpty reports whether nothing is held.
func (p *Portfolio) IsEmpty() bool { return len(p.holdings) == 0 }

// IDs returns the asset identifiers held, sorted.
func (p *Portfolio) IDs() []string {
	return slices.Sorted(maps.Keys(p.holdings))
}

// Holdings iterates over the holdings in asset identifier order.
func (p *Portfolio) Holdings() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		for _, id := range p.IDs() {
			if !yield(id, p.holdings[id]) {
				return
			}
		}
	}
}

// Replace overwrites all holdings with the ones of o.
func (p *Portfolio) Replace(o *Portfolio) {
	p.holdings = maps.Clone(o.holdings)
	if p.holdings == nil {
		p.holdings = make(map[string]Quantity)
	}
	p.rev++
}

// Revision changes every time the portfolio is mutated.
func (p *Portfolio) Revision() int { return p.rev }

// TotalValue sums quantity × price over the holdings that have a price.
//
// The total is fail-open: a holding whose asset is missing from prices
// contributes nothing to the total. Such holdings are returned in excluded,
// sorted, so that they can be flagged as "N/A".
func TotalValue(p *Portfolio, prices map[string]Quote) (total Money, excluded []string) {
	for id, q := range p.Holdings() {
		quote, ok := prices[id]
		if !ok {
			excluded = append(excluded, id)
			continue
		}
		total = total.Add(quote.Price.Mul(q))
	}
	return total, excluded
}

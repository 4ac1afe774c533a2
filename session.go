package cryptofolio

import (
	"fmt"
	"slices"
	"time"
)

// Session is the whole state of a single user session. It is created empty
// when the program starts and lives until it exits.
type Session struct {
	Portfolio     *Portfolio
	Alerts        *Alerts
	Notifications *Notifications
	Settings      Settings

	// baseline for portfolio value change notifications.
	lastTotal    Money
	lastRevision int
	lastPriced   []string // ids counted in lastTotal
	hasBaseline  bool
}

// NewSession returns an empty session with default settings.
func NewSession() *Session {
	return &Session{
		Portfolio:     NewPortfolio(),
		Alerts:        new(Alerts),
		Notifications: new(Notifications),
		Settings:      DefaultSettings(),
	}
}

// NeedsPrices reports whether Check has anything to evaluate, so that
// callers can skip fetching prices.
func (s *Session) NeedsPrices() bool {
	if s.Portfolio.IsEmpty() {
		return false
	}
	return (s.Settings.PriceAlerts && s.Alerts.HasActive()) || s.Settings.PortfolioChanges
}

// Check runs the post-render step: it evaluates the active alerts and the
// portfolio value against prices, appends the resulting notifications and
// returns them.
func (s *Session) Check(prices map[string]Quote, now time.Time) []Notification {
	var fired []Notification
	if s.Settings.PriceAlerts {
		fired = append(fired, s.Alerts.Evaluate(prices, now)...)
	}
	if s.Settings.PortfolioChanges {
		if n, ok := s.checkValue(prices, now); ok {
			fired = append(fired, n)
		}
	}
	s.Notifications.Append(fired...)
	return fired
}

// checkValue compares the priced total to the previous one. The baseline is
// reset silently when the portfolio is mutated, when no price is available,
// or when the set of priced holdings differs from the previous check.
func (s *Session) checkValue(prices map[string]Quote, now time.Time) (Notification, bool) {
	if s.Portfolio.IsEmpty() || len(prices) == 0 {
		s.hasBaseline = false
		return Notification{}, false
	}
	total, _ := TotalValue(s.Portfolio, prices)
	var priced []string
	for id := range s.Portfolio.Holdings() {
		if _, ok := prices[id]; ok {
			priced = append(priced, id)
		}
	}
	previous := s.lastTotal
	had := s.hasBaseline && s.lastRevision == s.Portfolio.Revision() && slices.Equal(s.lastPriced, priced)
	s.lastTotal, s.lastRevision, s.lastPriced, s.hasBaseline = total, s.Portfolio.Revision(), priced, true
	if !had || previous.Equal(total) {
		return Notification{}, false
	}
	return Notification{
		Message: fmt.Sprintf("Portfolio value changed from %s to %s (%s)", previous, total, previous.Change(total)),
		Time:    now,
	}, true
}

// Row is a line of the dashboard.
type Row struct {
	ID       string
	Quantity Quantity
	Priced   bool // false when no price was available
	Price    Money
	Value    Money
	// MarketCap is zero when unknown.
	MarketCap Money
}

// Dashboard is the view model of the portfolio dashboard.
type Dashboard struct {
	Rows     []Row
	Total    Money
	Excluded []string // holdings without price, not counted in Total
}

// IsEmpty reports whether the portfolio had no holdings.
func (d Dashboard) IsEmpty() bool { return len(d.Rows) == 0 }

// Recompute derives the dashboard from a portfolio and current prices. It
// does not modify its inputs and is meant to be called after every
// mutation.
func Recompute(p *Portfolio, prices map[string]Quote) Dashboard {
	var d Dashboard
	for id, q := range p.Holdings() {
		row := Row{ID: id, Quantity: q}
		if quote, ok := prices[id]; ok {
			row.Priced = true
			row.Price = quote.Price
			row.Value = quote.Price.Mul(q)
			row.MarketCap = quote.MarketCap
		}
		d.Rows = append(d.Rows, row)
	}
	d.Total, d.Excluded = TotalValue(p, prices)
	return d
}

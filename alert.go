package cryptofolio

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction tells which side of the threshold triggers an alert.
type Direction int

const (
	Above Direction = iota
	Below
)

func (d Direction) String() string {
	switch d {
	case Above:
		return "Above"
	case Below:
		return "Below"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection parses "above" or "below", case insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "above":
		return Above, nil
	case "below":
		return Below, nil
	}
	return 0, fmt.Errorf("invalid alert type %q, want \"above\" or \"below\"", s)
}

// Alert is a one-shot threshold condition on the spot price of an asset.
type Alert struct {
	ID        string
	Asset     string
	Direction Direction
	Threshold Money
	Active    bool
	Created   time.Time
}

// Crossed reports whether price is strictly beyond the threshold.
func (a Alert) Crossed(price Money) bool {
	switch a.Direction {
	case Above:
		return price.GreaterThan(a.Threshold)
	case Below:
		return price.LessThan(a.Threshold)
	default:
		return false
	}
}

// Status returns "Active" or "Inactive".
func (a Alert) Status() string {
	if a.Active {
		return "Active"
	}
	return "Inactive"
}

// ShortID returns the first characters of the alert id, enough to tell
// alerts apart on screen.
func (a Alert) ShortID() string {
	if len(a.ID) > 8 {
		return a.ID[:8]
	}
	return a.ID
}

// message is the text of the notification emitted when a triggers at price.
func (a Alert) message(price Money) string {
	return fmt.Sprintf("ALERT: %s is now %s, which is %s your threshold of %s",
		a.Asset, price, strings.ToLower(a.Direction.String()), a.Threshold)
}

// Alerts is the ordered collection of alerts of a session.
type Alerts struct {
	list []*Alert
}

// Add creates a new active alert with a fresh unique id.
func (as *Alerts) Add(asset string, d Direction, threshold Money, now time.Time) Alert {
	a := &Alert{
		ID:        uuid.NewString(),
		Asset:     asset,
		Direction: d,
		Threshold: threshold,
		Active:    true,
		Created:   now,
	}
	as.list = append(as.list, a)
	return *a
}

// List returns a copy of all alerts, in creation order.
func (as *Alerts) List() []Alert {
	out := make([]Alert, len(as.list))
	for i, a := range as.list {
		out[i] = *a
	}
	return out
}

// HasActive reports whether at least one alert is still active.
func (as *Alerts) HasActive() bool {
	return slices.ContainsFunc(as.list, func(a *Alert) bool { return a.Active })
}

// Len returns the number of alerts, active or not.
func (as *Alerts) Len() int { return len(as.list) }

// Clear removes all alerts.
func (as *Alerts) Clear() { as.list = nil }

// Evaluate triggers every active alert whose asset price in prices crossed
// its threshold. Triggered alerts are deactivated for good and produce one
// notification each. Alerts without a price are left untouched.
func (as *Alerts) Evaluate(prices map[string]Quote, now time.Time) []Notification {
	var fired []Notification
	for _, a := range as.list {
		if !a.Active {
			continue
		}
		quote, ok := prices[a.Asset]
		if !ok || !a.Crossed(quote.Price) {
			continue
		}
		a.Active = false
		fired = append(fired, Notification{Message: a.message(quote.Price), Time: now})
	}
	return fired
}

package cryptofolio

import (
	"strings"
	"testing"
	"time"
)

func TestSession_CheckAlerts(t *testing.T) {
	s := NewSession()
	s.Settings.PortfolioChanges = false
	s.Portfolio.Add("bitcoin", Q(1))
	s.Alerts.Add("bitcoin", Above, M(100), time.Now())

	if !s.NeedsPrices() {
		t.Fatal("NeedsPrices() = false with an active alert")
	}
	fired := s.Check(prices("bitcoin", 100.01), time.Now())
	if len(fired) != 1 {
		t.Fatalf("Check() fired %d notifications, want 1", len(fired))
	}
	if s.Notifications.Len() != 1 {
		t.Errorf("Notifications.Len() = %d, want 1", s.Notifications.Len())
	}
	if s.NeedsPrices() {
		t.Error("NeedsPrices() = true once every alert triggered")
	}

	s.Check(prices("bitcoin", 150.0), time.Now())
	if s.Notifications.Len() != 1 {
		t.Errorf("Notifications.Len() = %d after re-evaluation, want 1", s.Notifications.Len())
	}
}

func TestSession_CheckPriceAlertsDisabled(t *testing.T) {
	s := NewSession()
	s.Settings = Settings{PriceAlerts: false, PortfolioChanges: false}
	s.Portfolio.Add("bitcoin", Q(1))
	s.Alerts.Add("bitcoin", Above, M(100), time.Now())

	if s.NeedsPrices() {
		t.Error("NeedsPrices() = true with every notification disabled")
	}
	if fired := s.Check(prices("bitcoin", 200.0), time.Now()); len(fired) != 0 {
		t.Errorf("Check() fired %d notifications, want 0", len(fired))
	}
	if !s.Alerts.HasActive() {
		t.Error("alerts must stay active while price alerts are disabled")
	}
}

func TestSession_CheckPortfolioChanges(t *testing.T) {
	s := NewSession()
	s.Settings = Settings{PortfolioChanges: true}
	s.Portfolio.Add("bitcoin", Q(2))
	now := time.Now()

	if fired := s.Check(prices("bitcoin", 100.0), now); len(fired) != 0 {
		t.Fatalf("first check fired %v, want nothing: it sets the baseline", fired)
	}
	if fired := s.Check(prices("bitcoin", 100.0), now); len(fired) != 0 {
		t.Fatalf("unchanged value fired %v", fired)
	}
	fired := s.Check(prices("bitcoin", 110.0), now)
	if len(fired) != 1 {
		t.Fatalf("value change fired %d notifications, want 1", len(fired))
	}
	want := "Portfolio value changed from $200.00 to $220.00 (+10.00%)"
	if fired[0].Message != want {
		t.Errorf("message = %q, want %q", fired[0].Message, want)
	}

	// A mutation resets the baseline without notifying.
	s.Portfolio.Add("bitcoin", Q(1))
	if fired := s.Check(prices("bitcoin", 110.0), now); len(fired) != 0 {
		t.Errorf("check after a mutation fired %v", fired)
	}
	// No price at all resets the baseline too.
	if fired := s.Check(nil, now); len(fired) != 0 {
		t.Errorf("check without prices fired %v", fired)
	}
	if fired := s.Check(prices("bitcoin", 120.0), now); len(fired) != 0 {
		t.Errorf("check after a missing price fired %v", fired)
	}
}

func TestSession_CheckPortfolioChangesMissingQuote(t *testing.T) {
	s := NewSession()
	s.Settings = Settings{PortfolioChanges: true}
	s.Portfolio.Add("bitcoin", Q(1))
	s.Portfolio.Add("ethereum", Q(1))
	now := time.Now()

	s.Check(prices("bitcoin", 100.0, "ethereum", 10.0), now)
	if fired := s.Check(prices("bitcoin", 100.0), now); len(fired) != 0 {
		t.Errorf("a missing quote fired %v", fired)
	}
	if fired := s.Check(prices("bitcoin", 100.0, "ethereum", 10.0), now); len(fired) != 0 {
		t.Errorf("a quote coming back fired %v", fired)
	}
	fired := s.Check(prices("bitcoin", 100.0, "ethereum", 20.0), now)
	if len(fired) != 1 {
		t.Fatalf("a price move fired %d notifications, want 1", len(fired))
	}
	if want := "Portfolio value changed from $110.00 to $120.00 (+9.09%)"; fired[0].Message != want {
		t.Errorf("message = %q, want %q", fired[0].Message, want)
	}
}

func TestSession_NeedsPricesEmptyPortfolio(t *testing.T) {
	s := NewSession()
	s.Alerts.Add("bitcoin", Above, M(1), time.Now())
	if s.NeedsPrices() {
		t.Error("NeedsPrices() = true with an empty portfolio")
	}
}

func TestNotifications(t *testing.T) {
	var ns Notifications
	ns.Append(Notification{Message: "a"}, Notification{Message: "b"})
	if ns.Unread() != 2 {
		t.Errorf("Unread() = %d, want 2", ns.Unread())
	}
	list := ns.List()
	list[0].Message = "changed"
	if ns.List()[0].Message != "a" {
		t.Error("List() must return a copy")
	}
	ns.MarkRead()
	if ns.Unread() != 0 {
		t.Errorf("Unread() = %d after MarkRead, want 0", ns.Unread())
	}
	ns.Clear()
	if ns.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", ns.Len())
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m       Money
		want    string
		rounded string
	}{
		{M(0), "$0.00", "$0"},
		{M(1234.5), "$1,234.50", "$1,235"},
		{M(0.004), "$0.00", "$0"},
		{M(0.005), "$0.01", "$0"},
		{M(1322123456789.12), "$1,322,123,456,789.12", "$1,322,123,456,789"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.m.Rounded(); got != tt.rounded {
			t.Errorf("Rounded() = %q, want %q", got, tt.rounded)
		}
	}
	if !strings.HasPrefix(M(-3).String(), "-") {
		t.Errorf("negative money = %q, want a leading minus", M(-3).String())
	}
}

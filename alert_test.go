package cryptofolio

import (
	"testing"
	"time"
)

func prices(kv ...any) map[string]Quote {
	out := make(map[string]Quote)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = Quote{Price: M(kv[i+1].(float64))}
	}
	return out
}

func TestAlert_AboveFiresOnce(t *testing.T) {
	var alerts Alerts
	now := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	a := alerts.Add("bitcoin", Above, M(100), now)
	if !a.Active {
		t.Fatal("a new alert must be active")
	}

	if fired := alerts.Evaluate(prices("bitcoin", 100.0), now); len(fired) != 0 {
		t.Errorf("price equal to threshold fired %d notifications, want 0", len(fired))
	}

	fired := alerts.Evaluate(prices("bitcoin", 100.01), now)
	if len(fired) != 1 {
		t.Fatalf("price 100.01 fired %d notifications, want 1", len(fired))
	}
	want := "ALERT: bitcoin is now $100.01, which is above your threshold of $100.00"
	if fired[0].Message != want {
		t.Errorf("message = %q, want %q", fired[0].Message, want)
	}
	if fired[0].Timestamp() != "09:30:00" {
		t.Errorf("timestamp = %q, want 09:30:00", fired[0].Timestamp())
	}
	if fired[0].Read {
		t.Error("a new notification must be unread")
	}
	if alerts.List()[0].Active || alerts.HasActive() {
		t.Error("a triggered alert must be deactivated")
	}

	// Not re-armed.
	if fired := alerts.Evaluate(prices("bitcoin", 150.0), now); len(fired) != 0 {
		t.Errorf("re-evaluation at 150 fired %d notifications, want 0", len(fired))
	}
}

func TestAlert_Below(t *testing.T) {
	var alerts Alerts
	alerts.Add("ethereum", Below, M(2000), time.Now())

	if fired := alerts.Evaluate(prices("ethereum", 2000.0), time.Now()); len(fired) != 0 {
		t.Errorf("price equal to threshold fired %d notifications, want 0", len(fired))
	}
	if fired := alerts.Evaluate(prices("bitcoin", 1.0), time.Now()); len(fired) != 0 {
		t.Errorf("price of another asset fired %d notifications, want 0", len(fired))
	}
	fired := alerts.Evaluate(prices("ethereum", 1999.99), time.Now())
	if len(fired) != 1 {
		t.Fatalf("price 1999.99 fired %d notifications, want 1", len(fired))
	}
	want := "ALERT: ethereum is now $1,999.99, which is below your threshold of $2,000.00"
	if fired[0].Message != want {
		t.Errorf("message = %q, want %q", fired[0].Message, want)
	}
}

func TestAlerts_IdenticalAlertsDoNotCollide(t *testing.T) {
	var alerts Alerts
	a := alerts.Add("bitcoin", Above, M(100), time.Now())
	b := alerts.Add("bitcoin", Above, M(100), time.Now())

	if a.ID == b.ID || a.ID == "" {
		t.Errorf("alert ids = %q and %q, want two distinct ids", a.ID, b.ID)
	}
	if alerts.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", alerts.Len())
	}
	if fired := alerts.Evaluate(prices("bitcoin", 101.0), time.Now()); len(fired) != 2 {
		t.Errorf("fired %d notifications, want one per alert", len(fired))
	}
}

func TestAlerts_Clear(t *testing.T) {
	var alerts Alerts
	alerts.Add("bitcoin", Above, M(100), time.Now())
	alerts.Clear()
	if alerts.Len() != 0 || alerts.HasActive() {
		t.Errorf("Clear() left %d alerts", alerts.Len())
	}
}

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{"above": Above, "Above": Above, " BELOW ": Below}
	for in, want := range tests {
		got, err := ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) expected an error")
	}
}

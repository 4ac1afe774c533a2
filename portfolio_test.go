package cryptofolio

import (
	"errors"
	"slices"
	"testing"
)

func TestPortfolio_AddAccumulates(t *testing.T) {
	tests := []struct {
		q1, q2 float64
		want   string
	}{
		{0.5, 0.25, "0.75"},
		{1, 2, "3"},
		{0.1, 0.2, "0.3"},
		{1e-8, 1000000, "1000000.00000001"},
	}
	for _, tt := range tests {
		p := NewPortfolio()
		if err := p.Add("bitcoin", Q(tt.q1)); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", tt.q1, err)
		}
		if err := p.Add("bitcoin", Q(tt.q2)); err != nil {
			t.Fatalf("Add(%v) unexpected error: %v", tt.q2, err)
		}
		got, ok := p.Quantity("bitcoin")
		if !ok {
			t.Fatal("bitcoin is not held after Add")
		}
		if got.String() != tt.want {
			t.Errorf("Add(%v) then Add(%v) = %s, want %s", tt.q1, tt.q2, got, tt.want)
		}
		if p.Len() != 1 {
			t.Errorf("Len() = %d, want 1", p.Len())
		}
	}
}

func TestPortfolio_AddRejectsNonPositive(t *testing.T) {
	p := NewPortfolio()
	for _, q := range []Quantity{Q(0), Q(-1.5)} {
		if err := p.Add("bitcoin", q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Add(%s) error = %v, want ErrInvalidQuantity", q, err)
		}
	}
	if !p.IsEmpty() {
		t.Errorf("rejected additions mutated the portfolio: %v", p.IDs())
	}
}

func TestPortfolio_Remove(t *testing.T) {
	p := NewPortfolio()
	p.Add("bitcoin", Q(1))
	p.Add("ethereum", Q(2))
	rev := p.Revision()

	if !p.Remove("bitcoin") {
		t.Error("Remove(bitcoin) = false, want true")
	}
	if p.Remove("bitcoin") {
		t.Error("second Remove(bitcoin) = true, want false")
	}
	if p.Remove("dogecoin") {
		t.Error("Remove(dogecoin) = true, want false")
	}
	if got := p.IDs(); !slices.Equal(got, []string{"ethereum"}) {
		t.Errorf("IDs() = %v, want [ethereum]", got)
	}
	if p.Revision() != rev+1 {
		t.Errorf("Revision() = %d, want %d: only effective removals count", p.Revision(), rev+1)
	}
}

func TestTotalValue_FailOpen(t *testing.T) {
	p := NewPortfolio()
	p.Add("bitcoin", Q(0.5))
	p.Add("ethereum", Q(2))
	p.Add("unlisted", Q(1000))
	prices := map[string]Quote{
		"bitcoin":  {Price: M(60000)},
		"ethereum": {Price: M(3000.25)},
	}

	total, excluded := TotalValue(p, prices)
	if want := M(36000.5); !total.Equal(want) {
		t.Errorf("TotalValue() = %s, want %s", total, want)
	}
	if !slices.Equal(excluded, []string{"unlisted"}) {
		t.Errorf("excluded = %v, want [unlisted]", excluded)
	}

	// Without any price, nothing is counted.
	total, excluded = TotalValue(p, nil)
	if !total.IsZero() {
		t.Errorf("TotalValue(no prices) = %s, want $0.00", total)
	}
	if len(excluded) != 3 {
		t.Errorf("excluded = %v, want every holding", excluded)
	}
}

func TestRecompute(t *testing.T) {
	p := NewPortfolio()
	p.Add("ethereum", Q(2))
	p.Add("bitcoin", Q(0.5))
	prices := map[string]Quote{"bitcoin": {Price: M(100), MarketCap: M(5000)}}

	d := Recompute(p, prices)

	if len(d.Rows) != 2 {
		t.Fatalf("Rows = %v, want 2 rows", d.Rows)
	}
	if d.Rows[0].ID != "bitcoin" || d.Rows[1].ID != "ethereum" {
		t.Errorf("rows are not sorted by id: %s, %s", d.Rows[0].ID, d.Rows[1].ID)
	}
	if !d.Rows[0].Priced || !d.Rows[0].Value.Equal(M(50)) {
		t.Errorf("bitcoin row = %+v, want a value of $50", d.Rows[0])
	}
	if d.Rows[1].Priced {
		t.Errorf("ethereum row is priced, want N/A")
	}
	if !d.Total.Equal(M(50)) {
		t.Errorf("Total = %s, want $50.00", d.Total)
	}
	if !slices.Equal(d.Excluded, []string{"ethereum"}) {
		t.Errorf("Excluded = %v, want [ethereum]", d.Excluded)
	}
	if q, _ := p.Quantity("bitcoin"); !q.Equal(Q(0.5)) {
		t.Errorf("Recompute modified the portfolio: bitcoin = %s", q)
	}
}

func TestResolveAsset(t *testing.T) {
	catalog := []Asset{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{ID: "usd-coin", Symbol: "usdc", Name: "USDC"},
		{ID: "bridged-usdc", Symbol: "usdc", Name: "Bridged USDC"},
	}
	tests := []struct {
		query   string
		want    string
		wantErr bool
	}{
		{query: "bitcoin", want: "bitcoin"},
		{query: "ETH", want: "ethereum"},
		{query: " btc ", want: "bitcoin"},
		{query: "usd-coin", want: "usd-coin"},
		{query: "usdc", wantErr: true},
		{query: "dogecoin", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ResolveAsset(catalog, tt.query)
		if (err != nil) != tt.wantErr {
			t.Errorf("ResolveAsset(%q) error = %v, wantErr %v", tt.query, err, tt.wantErr)
			continue
		}
		if got.ID != tt.want {
			t.Errorf("ResolveAsset(%q) = %q, want %q", tt.query, got.ID, tt.want)
		}
	}
	if _, err := ResolveAsset(catalog, "dogecoin"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("ResolveAsset(dogecoin) error = %v, want ErrUnknownAsset", err)
	}
}

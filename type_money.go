package cryptofolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD is the only currency prices are requested in.
const USD = money.USD

// Money represents a monetary value in USD.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M returns a Money from any numeric value in dollars.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the money's currency
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, USD).Currency()
}

// String returns the value rounded to cents, like "$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Rounded returns the value rounded to whole dollars, like "$1,234". It is
// used for large figures such as market capitalisation.
func (m Money) Rounded() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value)} }

// AsFloat returns the closest float64, only meant for charts.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// Change returns the relative change from m to n in percent. The change is
// undefined when m is zero.
func (m Money) Change(n Money) Change {
	if m.value.IsZero() {
		return Change{}
	}
	pct := n.value.Sub(m.value).Div(m.value).Mul(decimal.NewFromInt(100))
	return Change{Value: Percent(pct.InexactFloat64()), Defined: true}
}

package cryptofolio

import "fmt"

type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "0.00%"
	}
	return res
}

// Change is a relative change that may be undefined, when the reference
// value is zero.
type Change struct {
	Value   Percent
	Defined bool
}

// String returns the signed percentage or "N/A" when undefined.
func (c Change) String() string {
	if !c.Defined {
		return "N/A"
	}
	return c.Value.SignedString()
}

package club

import "fmt"

// Percent is a percentage value, e.g. 25.0 for a quarter of the pool.
type Percent float64

// Equal compares two percentages with a small tolerance, enough to absorb
// float rounding when ratios are converted from exact decimals.
func (p Percent) Equal(q Percent) bool {
	const precision = 1e-6
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders with an explicit sign; zero renders as "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

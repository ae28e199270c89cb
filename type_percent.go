package perfindex

import "fmt"

// Percent is a percentage value in percent points (1.5 means 1.5%).
type Percent float64

// AsPercent converts a fractional value (0.015 means 1.5%) to a Percent.
func AsPercent(fractional float64) Percent { return Percent(100 * fractional) }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

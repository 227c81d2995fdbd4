package catalog

import "strings"

// Kind identifies a programme offered in the catalog.
type Kind string

const (
	Certification Kind = "CERTIFICATION"
	Degree        Kind = "DEGREE"
	Diploma       Kind = "DIPLOMA"
	Unknown       Kind = "UNKNOWN"
)

var unitPrices = map[Kind]float64{
	Certification: 3000,
	Degree:        5000,
	Diploma:       2500,
}

var discountRates = map[Kind]float64{
	Certification: 0.02,
	Degree:        0.03,
	Diploma:       0.01,
}

// Parse maps a command token to a programme kind. Unrecognized tokens map
// to Unknown rather than failing, so a malformed command degrades to a
// zero-cost line item.
func Parse(token string) Kind {
	switch Kind(strings.ToUpper(token)) {
	case Certification:
		return Certification
	case Degree:
		return Degree
	case Diploma:
		return Diploma
	default:
		return Unknown
	}
}

// IsKnown returns true if the kind is priced in the catalog.
func (k Kind) IsKnown() bool {
	_, ok := unitPrices[k]
	return ok
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// UnitPrice returns the fixed unit price for a kind. Unknown is 0.
func UnitPrice(k Kind) float64 {
	return unitPrices[k]
}

// DiscountRate returns the per-kind membership discount rate. Unknown is 0.
func DiscountRate(k Kind) float64 {
	return discountRates[k]
}

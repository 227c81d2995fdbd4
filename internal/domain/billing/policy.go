package billing

import "strings"

// PolicyKind tags a coupon discount policy variant.
type PolicyKind int

const (
	// PolicyZero is the default policy: no coupon discount.
	PolicyZero PolicyKind = iota
	// PolicyPercent discounts a fixed percentage of the amount before discount.
	PolicyPercent
)

// DiscountPolicy is the coupon discount strategy selected on an invoice.
// The zero value is the zero-discount policy.
type DiscountPolicy struct {
	Kind PolicyKind
	Rate float64
}

// Apply returns the discount for the given amount before discount.
// A negative amount never produces a discount.
func (p DiscountPolicy) Apply(amount float64) float64 {
	switch p.Kind {
	case PolicyPercent:
		if amount < 0 {
			return 0
		}
		return amount * p.Rate
	default:
		return 0
	}
}

var couponPolicies = map[string]DiscountPolicy{
	"DEAL_G20": {Kind: PolicyPercent, Rate: 0.20},
	"DEAL_G5":  {Kind: PolicyPercent, Rate: 0.05},
}

// LookupCoupon resolves a coupon name, case-insensitively, to its policy.
func LookupCoupon(name string) (DiscountPolicy, bool) {
	p, ok := couponPolicies[strings.ToUpper(name)]
	return p, ok
}

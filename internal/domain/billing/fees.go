package billing

import "github.com/garyjia/edu-billing/internal/domain/catalog"

const (
	enrollmentFee          = 500.0
	enrollmentFeeThreshold = 6666.0

	membershipFee = 200.0

	bulkDiscountThreshold = 4
	bulkCouponLabel       = "B4G1"
)

// EnrollmentFee returns the flat enrollment fee derived from the subtotal.
// Subtotals at or above the threshold waive the fee.
func EnrollmentFee(subtotal float64) float64 {
	if subtotal < enrollmentFeeThreshold {
		return enrollmentFee
	}
	return 0
}

// MembershipDiscount sums the per-kind rate discount across all line items.
// Gating on membership being active is the invoice's responsibility.
func MembershipDiscount(items []LineItem) float64 {
	var discount float64
	for _, li := range items {
		discount += catalog.DiscountRate(li.Kind) * li.Cost()
	}
	return discount
}

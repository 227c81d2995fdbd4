package billing

// Bill is the six-figure snapshot an invoice produces for printing, in
// fixed output order. CouponLabel is empty when no coupon was applied.
type Bill struct {
	Subtotal           float64
	MembershipDiscount float64
	MembershipFee      float64
	EnrollmentFee      float64
	CouponLabel        string
	Discount           float64
	Total              float64
}

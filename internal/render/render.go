package render

import (
	"fmt"
	"io"

	"github.com/garyjia/edu-billing/internal/domain/billing"
)

// Renderer emits one bill snapshot.
type Renderer interface {
	Render(bill billing.Bill) error
}

// TextRenderer writes the bill as labelled lines, two-decimal fixed, in
// the fixed output order. The coupon line carries the label only when a
// coupon was applied.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a text renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render writes the six bill lines.
func (r *TextRenderer) Render(bill billing.Bill) error {
	lines := []string{
		fmt.Sprintf("SUBTOTAL %.2f", bill.Subtotal),
		fmt.Sprintf("MEMBERSHIP_DISCOUNT %.2f", bill.MembershipDiscount),
		fmt.Sprintf("MEMBERSHIP_FEE %.2f", bill.MembershipFee),
		fmt.Sprintf("ENROLLMENT_FEE %.2f", bill.EnrollmentFee),
		couponLine(bill),
		fmt.Sprintf("TOTAL %.2f", bill.Total),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return fmt.Errorf("failed to write bill line: %w", err)
		}
	}
	return nil
}

func couponLine(bill billing.Bill) string {
	if bill.CouponLabel == "" {
		return fmt.Sprintf("COUPON_DISCOUNT %.2f", bill.Discount)
	}
	return fmt.Sprintf("COUPON_DISCOUNT %s %.2f", bill.CouponLabel, bill.Discount)
}

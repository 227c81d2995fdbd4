package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/garyjia/edu-billing/internal/domain/billing"
)

// captureRenderer records every bill handed to it.
type captureRenderer struct {
	bills []billing.Bill
}

func (r *captureRenderer) Render(bill billing.Bill) error {
	r.bills = append(r.bills, bill)
	return nil
}

func newTestProcessor() (*Processor, *captureRenderer) {
	renderer := &captureRenderer{}
	return New(renderer, zap.NewNop()), renderer
}

func TestProcessor_PlainPurchase(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME CERTIFICATION 2",
		"ADD_PROGRAMME DEGREE 1",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	bill := renderer.bills[0]
	assert.Equal(t, 11000.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.EnrollmentFee)
	assert.Equal(t, 0.0, bill.MembershipFee)
	assert.Equal(t, 0.0, bill.Discount)
	assert.Equal(t, "", bill.CouponLabel)
	assert.Equal(t, 11000.0, bill.Total)
}

func TestProcessor_BulkDiscountRun(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME CERTIFICATION 4",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	bill := renderer.bills[0]
	assert.Equal(t, 12000.0, bill.Subtotal)
	assert.Equal(t, 3000.0, bill.Discount)
	assert.Equal(t, 9000.0, bill.Total)
}

func TestProcessor_CouponRun(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME DIPLOMA 2",
		"APPLY_COUPON deal_g20",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	bill := renderer.bills[0]
	assert.Equal(t, 5000.0, bill.Subtotal)
	assert.Equal(t, 500.0, bill.EnrollmentFee)
	assert.Equal(t, "DEAL_G20", bill.CouponLabel)
	assert.InDelta(t, 1100.0, bill.Discount, 1e-9)
	assert.InDelta(t, 4400.0, bill.Total, 1e-9)
}

func TestProcessor_MembershipRun(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"PRO_MEMBERSHIP",
		"ADD_PROGRAMME DEGREE 1",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	bill := renderer.bills[0]
	assert.Equal(t, 5000.0, bill.Subtotal)
	assert.Equal(t, 500.0, bill.EnrollmentFee)
	assert.Equal(t, 200.0, bill.MembershipFee)
	assert.InDelta(t, 150.0, bill.MembershipDiscount, 1e-9)
	assert.InDelta(t, 5550.0, bill.Total, 1e-9)
}

func TestProcessor_UnrecognizedCommandIgnored(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME DEGREE 1",
		"REFUND_PROGRAMME DEGREE 1",
		"",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	assert.Equal(t, 5000.0, renderer.bills[0].Total)
	assert.Equal(t, 1, p.Summary().Ignored)
	assert.Equal(t, 2, p.Summary().Processed)
}

func TestProcessor_UnknownKindCountsTowardCouponThreshold(t *testing.T) {
	p, renderer := newTestProcessor()

	// Four unknown-kind units meet the coupon threshold even though none
	// of them are discountable.
	err := p.Run([]string{
		"ADD_PROGRAMME PHD 4",
		"APPLY_COUPON anything",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 1)

	bill := renderer.bills[0]
	assert.Equal(t, "B4G1", bill.CouponLabel)
	assert.Equal(t, 0.0, bill.Subtotal)
	assert.Equal(t, 0.0, bill.Discount)
}

func TestProcessor_CouponWithoutTokenIsNoOp(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME CERTIFICATION 4",
		"APPLY_COUPON",
		"PRINT_BILL",
	})
	require.NoError(t, err)

	assert.Equal(t, "", renderer.bills[0].CouponLabel)
	// Bulk override still applies at bill time regardless of any coupon.
	assert.Equal(t, 3000.0, renderer.bills[0].Discount)
}

func TestProcessor_SecondCouponIsNoOp(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME DIPLOMA 1",
		"APPLY_COUPON deal_g5",
		"APPLY_COUPON deal_g20",
		"PRINT_BILL",
	})
	require.NoError(t, err)

	assert.Equal(t, "DEAL_G5", renderer.bills[0].CouponLabel)
}

func TestProcessor_NonNumericQuantityTreatedAsZero(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME DEGREE many",
		"PRINT_BILL",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, renderer.bills[0].Subtotal)
	assert.Equal(t, 0, p.Invoice().RunningItemCount())
	assert.Len(t, p.Invoice().Items(), 1)
}

func TestProcessor_MultiplePrintsAreConsistent(t *testing.T) {
	p, renderer := newTestProcessor()

	err := p.Run([]string{
		"ADD_PROGRAMME CERTIFICATION 2",
		"PRINT_BILL",
		"ADD_PROGRAMME CERTIFICATION 2",
		"PRINT_BILL",
		"PRINT_BILL",
	})
	require.NoError(t, err)
	require.Len(t, renderer.bills, 3)

	assert.Equal(t, 6000.0, renderer.bills[0].Total)
	// After four certifications the override kicks in.
	assert.Equal(t, 9000.0, renderer.bills[1].Total)
	assert.Equal(t, renderer.bills[1], renderer.bills[2])
	assert.Equal(t, 3, p.Summary().Printed)
}

func TestProcessor_MutationOrderDoesNotMatter(t *testing.T) {
	runs := [][]string{
		{
			"PRO_MEMBERSHIP",
			"ADD_PROGRAMME DEGREE 1",
			"ADD_PROGRAMME DIPLOMA 2",
			"PRINT_BILL",
		},
		{
			"ADD_PROGRAMME DIPLOMA 2",
			"ADD_PROGRAMME DEGREE 1",
			"PRO_MEMBERSHIP",
			"PRINT_BILL",
		},
	}

	var bills []billing.Bill
	for _, lines := range runs {
		p, renderer := newTestProcessor()
		require.NoError(t, p.Run(lines))
		require.Len(t, renderer.bills, 1)
		bills = append(bills, renderer.bills[0])
	}

	assert.Equal(t, bills[0], bills[1])
}

func TestProcessor_AddProgrammeWithoutArgumentsSkipped(t *testing.T) {
	p, _ := newTestProcessor()

	require.NoError(t, p.Process("ADD_PROGRAMME"))
	assert.Empty(t, p.Invoice().Items())
}

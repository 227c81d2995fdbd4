package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/garyjia/edu-billing/internal/domain/billing"
)

// ExcelRenderer writes the bill to an .xlsx workbook, one labelled figure
// per row, mirroring the text output order.
type ExcelRenderer struct {
	outputPath string
	logger     *zap.Logger
}

// NewExcelRenderer creates an Excel renderer writing to outputPath.
func NewExcelRenderer(outputPath string, logger *zap.Logger) *ExcelRenderer {
	return &ExcelRenderer{
		outputPath: outputPath,
		logger:     logger,
	}
}

// Render writes the bill workbook to the configured path. Each Render
// call overwrites the previous file, so the exported bill always matches
// the latest print.
func (r *ExcelRenderer) Render(bill billing.Bill) error {
	r.logger.Info("Writing bill workbook",
		zap.String("output_path", r.outputPath),
		zap.Float64("total", bill.Total))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	rows := []struct {
		label string
		value float64
	}{
		{"SUBTOTAL", bill.Subtotal},
		{"MEMBERSHIP_DISCOUNT", bill.MembershipDiscount},
		{"MEMBERSHIP_FEE", bill.MembershipFee},
		{"ENROLLMENT_FEE", bill.EnrollmentFee},
		{"COUPON_DISCOUNT", bill.Discount},
		{"TOTAL", bill.Total},
	}

	for i, row := range rows {
		r.setCell(f, sheet, fmt.Sprintf("A%d", i+1), row.label)
		r.setCell(f, sheet, fmt.Sprintf("B%d", i+1), fmt.Sprintf("%.2f", row.value))
	}
	if bill.CouponLabel != "" {
		r.setCell(f, sheet, "C5", bill.CouponLabel)
	}

	if err := f.SaveAs(r.outputPath); err != nil {
		return fmt.Errorf("failed to save bill workbook: %w", err)
	}
	return nil
}

// setCell sets a cell value, logging rather than failing on error
func (r *ExcelRenderer) setCell(f *excelize.File, sheet, cell string, value interface{}) {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		r.logger.Warn("Failed to set cell value",
			zap.String("cell", cell),
			zap.Error(err))
	}
}

package processor

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/garyjia/edu-billing/internal/domain/billing"
	"github.com/garyjia/edu-billing/internal/domain/catalog"
	"github.com/garyjia/edu-billing/internal/render"
)

// Command names accepted from the input file.
const (
	CmdAddProgramme  = "ADD_PROGRAMME"
	CmdProMembership = "PRO_MEMBERSHIP"
	CmdApplyCoupon   = "APPLY_COUPON"
	CmdPrintBill     = "PRINT_BILL"
)

// Summary reports what a run did with its input lines.
type Summary struct {
	Processed int
	Ignored   int
	Printed   int
}

// Processor routes whitespace-tokenized command lines to registered
// handlers, mutating a single invoice owned by the run. Commands are
// applied synchronously in input order; unrecognized commands are logged
// and skipped.
type Processor struct {
	invoice  *billing.Invoice
	renderer render.Renderer
	logger   *zap.Logger
	handlers map[string]HandlerInfo
	summary  Summary
}

// New creates a processor over a fresh invoice.
func New(renderer render.Renderer, logger *zap.Logger) *Processor {
	p := &Processor{
		invoice:  billing.NewInvoice(),
		renderer: renderer,
		logger:   logger,
		handlers: make(map[string]HandlerInfo),
	}

	p.register(CmdAddProgramme, p.handleAddProgramme)
	p.register(CmdProMembership, p.handleProMembership)
	p.register(CmdApplyCoupon, p.handleApplyCoupon)
	p.register(CmdPrintBill, p.handlePrintBill)

	return p
}

// Invoice exposes the run's invoice, mainly for tests and summaries.
func (p *Processor) Invoice() *billing.Invoice {
	return p.invoice
}

// Summary returns counters for the run so far.
func (p *Processor) Summary() Summary {
	return p.summary
}

// Run applies every line in order. The returned error comes from the
// renderer only; malformed input never aborts a run.
func (p *Processor) Run(lines []string) error {
	for _, line := range lines {
		if err := p.Process(line); err != nil {
			return err
		}
	}

	p.logger.Info("Run complete",
		zap.Int("processed", p.summary.Processed),
		zap.Int("ignored", p.summary.Ignored),
		zap.Int("printed", p.summary.Printed))

	return nil
}

// Process applies a single command line.
func (p *Processor) Process(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	info, ok := p.handlers[tokens[0]]
	if !ok {
		p.logger.Debug("Ignoring unrecognized command", zap.String("command", tokens[0]))
		p.summary.Ignored++
		return nil
	}

	if err := info.Handler(tokens[1:]); err != nil {
		return fmt.Errorf("command %s failed: %w", info.Name, err)
	}
	p.summary.Processed++
	return nil
}

func (p *Processor) register(name string, handler Handler) {
	p.handlers[name] = HandlerInfo{Name: name, Handler: handler}
}

// handleAddProgramme appends a line item. An unrecognized kind becomes a
// zero-priced Unknown item and a non-numeric quantity becomes 0; both
// still count toward the raw item count.
func (p *Processor) handleAddProgramme(args []string) error {
	if len(args) == 0 {
		p.logger.Debug("ADD_PROGRAMME without arguments, skipping")
		return nil
	}

	kind := catalog.Parse(args[0])
	quantity := 0
	if len(args) > 1 {
		if q, err := strconv.Atoi(args[1]); err == nil {
			quantity = q
		} else {
			p.logger.Debug("Non-numeric quantity, treating as zero",
				zap.String("quantity", args[1]))
		}
	}

	p.invoice.AddItem(kind, quantity)
	p.logger.Debug("Added line item",
		zap.String("kind", kind.String()),
		zap.Int("quantity", quantity))
	return nil
}

func (p *Processor) handleProMembership(args []string) error {
	p.invoice.ActivateMembership()
	p.logger.Debug("Membership activated")
	return nil
}

// handleApplyCoupon forwards the optional coupon token. Whether a token
// was present at all is meaningful, so absence is passed explicitly.
func (p *Processor) handleApplyCoupon(args []string) error {
	token := ""
	present := len(args) > 0
	if present {
		token = args[0]
	}

	if p.invoice.ApplyCoupon(token, present) {
		p.logger.Debug("Coupon applied", zap.String("label", p.invoice.CouponLabel()))
	} else {
		p.logger.Debug("Coupon not applied",
			zap.String("token", token),
			zap.Bool("present", present))
	}
	return nil
}

func (p *Processor) handlePrintBill(args []string) error {
	bill := p.invoice.Bill()
	if err := p.renderer.Render(bill); err != nil {
		return err
	}
	p.summary.Printed++
	return nil
}

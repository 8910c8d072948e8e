package recon

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

// Tolerance is the epsilon below which two monetary or quantity values are
// considered equal. Differences of exactly 0.01 do not count as mismatches.
var Tolerance = decimal.RequireFromString("0.01")

// Report is the outcome of comparing one order against one invoice.
type Report struct {
	Results       []entity.ValidationResult
	Summary       entity.ValidationSummary
	OrderTotals   entity.Totals
	InvoiceTotals entity.Totals
}

// itemIndex is a name-keyed view of a document's items. Keys are
// case-folded and trimmed; when a name repeats within one document the
// later row silently replaces the earlier one (last occurrence wins) while
// keeping the key's original position, so report order stays stable.
type itemIndex struct {
	keys  []string
	items map[string]entity.LineItem
}

func indexItems(items []entity.LineItem) itemIndex {
	idx := itemIndex{items: make(map[string]entity.LineItem, len(items))}
	for _, it := range items {
		key := itemKey(it.Name)
		if _, seen := idx.items[key]; !seen {
			idx.keys = append(idx.keys, key)
		}
		idx.items[key] = it
	}
	return idx
}

func itemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Compare reconciles an order document against an invoice document and
// grades every discrepancy. It is a pure function of its inputs; the
// caller supplies "now" so date checks stay reproducible.
func Compare(order, invoice *entity.Document, now time.Time) Report {
	r := Report{
		Summary: entity.ValidationSummary{
			ItemsStatus:  constants.StatusValid,
			VATStatus:    constants.StatusValid,
			DatesStatus:  constants.StatusValid,
			TotalsStatus: constants.StatusValid,
			FinalStatus:  constants.StatusValid,
		},
	}

	orderIdx := indexItems(order.Items)
	invoiceIdx := indexItems(invoice.Items)

	// Items: missing, quantity and unit-price checks.
	for _, key := range orderIdx.keys {
		orderItem := orderIdx.items[key]
		invoiceItem, ok := invoiceIdx.items[key]
		if !ok {
			r.add(constants.CategoryItems, constants.SeverityError,
				fmt.Sprintf("Item %q from order is missing in invoice", orderItem.Name))
			continue
		}
		if exceedsTolerance(orderItem.Qty, invoiceItem.Qty) {
			r.add(constants.CategoryItems, constants.SeverityWarning,
				fmt.Sprintf("Quantity mismatch for %q: order %v vs invoice %v",
					orderItem.Name, orderItem.Qty, invoiceItem.Qty))
		}
		if exceedsTolerance(orderItem.UnitPrice, invoiceItem.UnitPrice) {
			r.add(constants.CategoryItems, constants.SeverityWarning,
				fmt.Sprintf("Unit price mismatch for %q: order %v vs invoice %v",
					orderItem.Name, orderItem.UnitPrice, invoiceItem.UnitPrice))
		}
	}
	for _, key := range invoiceIdx.keys {
		if _, ok := orderIdx.items[key]; !ok {
			r.add(constants.CategoryItems, constants.SeverityWarning,
				fmt.Sprintf("Extra item %q in invoice not found in order", invoiceIdx.items[key].Name))
		}
	}

	// VAT: per matching item, any rate difference is an error.
	for _, key := range orderIdx.keys {
		orderItem := orderIdx.items[key]
		invoiceItem, ok := invoiceIdx.items[key]
		if !ok {
			continue
		}
		if exceedsTolerance(orderItem.VATPercent, invoiceItem.VATPercent) {
			r.add(constants.CategoryVAT, constants.SeverityError,
				fmt.Sprintf("VAT mismatch for %q: order %v%% vs invoice %v%%",
					orderItem.Name, orderItem.VATPercent, invoiceItem.VATPercent))
		}
	}

	// Totals: subtotal, VAT total and grand total compared independently.
	orderTotals := computeTotals(order.Items)
	invoiceTotals := computeTotals(invoice.Items)
	r.OrderTotals = orderTotals.toEntity()
	r.InvoiceTotals = invoiceTotals.toEntity()

	totalChecks := []struct {
		label          string
		order, invoice decimal.Decimal
	}{
		{"Subtotal", orderTotals.subtotal, invoiceTotals.subtotal},
		{"VAT total", orderTotals.vatTotal, invoiceTotals.vatTotal},
		{"Grand total", orderTotals.grandTotal, invoiceTotals.grandTotal},
	}
	for _, c := range totalChecks {
		if c.order.Sub(c.invoice).Abs().GreaterThan(Tolerance) {
			r.add(constants.CategoryTotals, constants.SeverityError,
				fmt.Sprintf("%s mismatch: order %s vs invoice %s",
					c.label, c.order.StringFixed(2), c.invoice.StringFixed(2)))
		}
	}

	// Dates: creation timestamps, not user-entered document dates.
	if invoice.CreatedAt.Before(order.CreatedAt) {
		r.add(constants.CategoryDates, constants.SeverityError,
			fmt.Sprintf("Invoice date (%s) is before order date (%s)",
				invoice.CreatedAt.Format("2006-01-02"), order.CreatedAt.Format("2006-01-02")))
	}
	if invoice.CreatedAt.After(now) {
		r.add(constants.CategoryDates, constants.SeverityWarning,
			fmt.Sprintf("Invoice date (%s) is in the future", invoice.CreatedAt.Format("2006-01-02")))
	}
	if order.CreatedAt.After(now) {
		r.add(constants.CategoryDates, constants.SeverityWarning,
			fmt.Sprintf("Order date (%s) is in the future", order.CreatedAt.Format("2006-01-02")))
	}

	r.Summary.FinalStatus = finalStatus(r.Summary)
	return r
}

func (r *Report) add(cat constants.ValidationCategory, sev constants.Severity, msg string) {
	r.Results = append(r.Results, entity.ValidationResult{
		Category: cat,
		Message:  msg,
		Severity: sev,
	})
	switch cat {
	case constants.CategoryItems:
		r.Summary.ItemsStatus = constants.Escalate(r.Summary.ItemsStatus, sev)
	case constants.CategoryVAT:
		r.Summary.VATStatus = constants.Escalate(r.Summary.VATStatus, sev)
	case constants.CategoryDates:
		r.Summary.DatesStatus = constants.Escalate(r.Summary.DatesStatus, sev)
	case constants.CategoryTotals:
		r.Summary.TotalsStatus = constants.Escalate(r.Summary.TotalsStatus, sev)
	}
}

func finalStatus(s entity.ValidationSummary) constants.ValidationStatus {
	statuses := []constants.ValidationStatus{s.ItemsStatus, s.VATStatus, s.DatesStatus, s.TotalsStatus}
	final := constants.StatusValid
	for _, st := range statuses {
		if st == constants.StatusError {
			return constants.StatusError
		}
		if st == constants.StatusWarning {
			final = constants.StatusWarning
		}
	}
	return final
}

func exceedsTolerance(a, b float64) bool {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs().GreaterThan(Tolerance)
}

type totals struct {
	subtotal   decimal.Decimal
	vatTotal   decimal.Decimal
	grandTotal decimal.Decimal
}

// computeTotals sums a document's items: subtotal = Σ qty·unitPrice,
// vatTotal = Σ lineSubtotal·vat/100, grandTotal = subtotal + vatTotal.
func computeTotals(items []entity.LineItem) totals {
	hundred := decimal.NewFromInt(100)
	t := totals{}
	for _, it := range items {
		lineSubtotal := decimal.NewFromFloat(it.Qty).Mul(decimal.NewFromFloat(it.UnitPrice))
		lineVAT := lineSubtotal.Mul(decimal.NewFromFloat(it.VATPercent)).Div(hundred)
		t.subtotal = t.subtotal.Add(lineSubtotal)
		t.vatTotal = t.vatTotal.Add(lineVAT)
	}
	t.grandTotal = t.subtotal.Add(t.vatTotal)
	return t
}

func (t totals) toEntity() entity.Totals {
	return entity.Totals{
		Subtotal:   t.subtotal.InexactFloat64(),
		VATTotal:   t.vatTotal.InexactFloat64(),
		GrandTotal: t.grandTotal.InexactFloat64(),
	}
}

package recon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func doc(created time.Time, items ...entity.LineItem) *entity.Document {
	return &entity.Document{CreatedAt: created, Items: items}
}

func item(name string, qty, price, vat float64) entity.LineItem {
	return entity.LineItem{Name: name, Qty: qty, UnitPrice: price, VATPercent: vat}
}

func TestComparePerfectMatch(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 2, 100, 18))
	invoice := doc(created.Add(time.Hour), item("Box", 2, 100, 18))

	r := Compare(order, invoice, testNow)

	assert.Empty(t, r.Results)
	assert.Equal(t, constants.StatusValid, r.Summary.ItemsStatus)
	assert.Equal(t, constants.StatusValid, r.Summary.VATStatus)
	assert.Equal(t, constants.StatusValid, r.Summary.DatesStatus)
	assert.Equal(t, constants.StatusValid, r.Summary.TotalsStatus)
	assert.Equal(t, constants.StatusValid, r.Summary.FinalStatus)

	assert.InDelta(t, 200.0, r.OrderTotals.Subtotal, 1e-9)
	assert.InDelta(t, 36.0, r.OrderTotals.VATTotal, 1e-9)
	assert.InDelta(t, 236.0, r.OrderTotals.GrandTotal, 1e-9)
}

func TestCompareMissingItemIsError(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 2, 100, 18), item("Tape", 1, 10, 18))
	invoice := doc(created, item("Box", 2, 100, 18))

	r := Compare(order, invoice, testNow)

	require.NotEmpty(t, r.Results)
	var found bool
	for _, res := range r.Results {
		if res.Category == constants.CategoryItems && res.Severity == constants.SeverityError {
			assert.Equal(t, `Item "Tape" from order is missing in invoice`, res.Message)
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, constants.StatusError, r.Summary.ItemsStatus)
	assert.Equal(t, constants.StatusError, r.Summary.FinalStatus)
}

func TestCompareExtraItemIsWarning(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 2, 100, 18))
	invoice := doc(created, item("Box", 2, 100, 18), item("Gift wrap", 1, 5, 18))

	r := Compare(order, invoice, testNow)

	require.NotEmpty(t, r.Results)
	var found bool
	for _, res := range r.Results {
		if res.Category == constants.CategoryItems {
			assert.Equal(t, constants.SeverityWarning, res.Severity)
			assert.Equal(t, `Extra item "Gift wrap" in invoice not found in order`, res.Message)
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, constants.StatusWarning, r.Summary.ItemsStatus)
}

func TestCompareQuantityMismatchIsWarning(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 10, 100, 18))
	invoice := doc(created, item("Box", 12, 100, 18))

	r := Compare(order, invoice, testNow)

	var msgs []string
	for _, res := range r.Results {
		if res.Category == constants.CategoryItems {
			assert.Equal(t, constants.SeverityWarning, res.Severity)
			msgs = append(msgs, res.Message)
		}
	}
	assert.Contains(t, msgs, `Quantity mismatch for "Box": order 10 vs invoice 12`)
	assert.Equal(t, constants.StatusWarning, r.Summary.ItemsStatus)
	// Totals diverge too, and that is graded as an error.
	assert.Equal(t, constants.StatusError, r.Summary.TotalsStatus)
	assert.Equal(t, constants.StatusError, r.Summary.FinalStatus)
}

func TestCompareVATMismatchIsError(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 2, 100, 18))
	invoice := doc(created, item("Box", 2, 100, 5))

	r := Compare(order, invoice, testNow)

	var found bool
	for _, res := range r.Results {
		if res.Category == constants.CategoryVAT {
			assert.Equal(t, constants.SeverityError, res.Severity)
			assert.Equal(t, `VAT mismatch for "Box": order 18% vs invoice 5%`, res.Message)
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, constants.StatusError, r.Summary.VATStatus)
	assert.Equal(t, constants.StatusError, r.Summary.FinalStatus)
}

func TestCompareTolerance(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)

	t.Run("difference within tolerance passes", func(t *testing.T) {
		order := doc(created, item("Box", 1, 10.00, 0))
		invoice := doc(created, item("Box", 1, 10.009, 0))
		r := Compare(order, invoice, testNow)
		assert.Empty(t, r.Results)
		assert.Equal(t, constants.StatusValid, r.Summary.FinalStatus)
	})

	t.Run("difference of exactly the tolerance passes", func(t *testing.T) {
		order := doc(created, item("Box", 1, 10.00, 0))
		invoice := doc(created, item("Box", 1, 10.01, 0))
		r := Compare(order, invoice, testNow)
		assert.Empty(t, r.Results)
	})

	t.Run("difference beyond tolerance fails", func(t *testing.T) {
		order := doc(created, item("Box", 1, 10.00, 0))
		invoice := doc(created, item("Box", 1, 10.011, 0))
		r := Compare(order, invoice, testNow)
		assert.NotEmpty(t, r.Results)
		assert.Equal(t, constants.StatusWarning, r.Summary.ItemsStatus)
	})
}

func TestCompareTotalsMismatchMessages(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("Box", 2, 100, 18))
	invoice := doc(created, item("Box", 2, 110, 18))

	r := Compare(order, invoice, testNow)

	var msgs []string
	for _, res := range r.Results {
		if res.Category == constants.CategoryTotals {
			assert.Equal(t, constants.SeverityError, res.Severity)
			msgs = append(msgs, res.Message)
		}
	}
	assert.Contains(t, msgs, "Subtotal mismatch: order 200.00 vs invoice 220.00")
	assert.Contains(t, msgs, "VAT total mismatch: order 36.00 vs invoice 39.60")
	assert.Contains(t, msgs, "Grand total mismatch: order 236.00 vs invoice 259.60")
}

func TestCompareDates(t *testing.T) {
	t.Run("invoice before order is an error", func(t *testing.T) {
		order := doc(testNow.Add(-24 * time.Hour))
		invoice := doc(testNow.Add(-48 * time.Hour))
		r := Compare(order, invoice, testNow)
		assert.Equal(t, constants.StatusError, r.Summary.DatesStatus)
	})

	t.Run("future invoice is a warning", func(t *testing.T) {
		order := doc(testNow.Add(-24 * time.Hour))
		invoice := doc(testNow.Add(24 * time.Hour))
		r := Compare(order, invoice, testNow)
		assert.Equal(t, constants.StatusWarning, r.Summary.DatesStatus)
	})

	t.Run("future order is a warning", func(t *testing.T) {
		order := doc(testNow.Add(24 * time.Hour))
		invoice := doc(testNow.Add(48 * time.Hour))
		r := Compare(order, invoice, testNow)
		assert.Equal(t, constants.StatusWarning, r.Summary.DatesStatus)
	})
}

func TestCompareItemKeysAreCaseAndWhitespaceInsensitive(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created, item("  Box  ", 2, 100, 18))
	invoice := doc(created, item("box", 2, 100, 18))

	r := Compare(order, invoice, testNow)
	assert.Empty(t, r.Results)
}

func TestCompareDuplicateNamesLastOccurrenceWins(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	// Two "Box" rows in the order: only the later one counts for matching.
	order := doc(created, item("Box", 1, 100, 18), item("Box", 2, 100, 18))
	invoice := doc(created, item("Box", 2, 100, 18))

	r := Compare(order, invoice, testNow)

	for _, res := range r.Results {
		assert.NotEqual(t, constants.CategoryItems, res.Category)
	}
	assert.Equal(t, constants.StatusValid, r.Summary.ItemsStatus)
}

func TestCompareIsDeterministic(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	order := doc(created,
		item("Box", 2, 100, 18),
		item("Tape", 1, 10, 18),
		item("Glue", 4, 3, 18),
	)
	invoice := doc(created, item("Box", 2, 100, 5))

	first := Compare(order, invoice, testNow)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compare(order, invoice, testNow))
	}
}

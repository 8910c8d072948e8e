package extract

import (
	"regexp"
	"strings"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

// Lines never treated as items: table headers, totals, VAT and payment
// boilerplate in either language.
var reSkipLine = regexp.MustCompile(`(?i)Бр\.|ОПИС|КОЛ|Артикол|Вкупно|За плаќање|Издавање|Доспевање|Фактура|купувач|Добавувач|Налог|Намена|Датум|ДДВ|основица|total|subtotal|vat\b|amount due|balance|payment|invoice|bill to|ship to|thank`)

var (
	reNumericLine   = regexp.MustCompile(`^[\d\s.,\-]+$`)
	reContactMarker = regexp.MustCompile(`(?i)@|https?://|www\.|\.com\b|Tel\b|Phone`)
	reNumericToken  = regexp.MustCompile(`^[\d.,]+$`)
	reDenSplit      = regexp.MustCompile(`(?i)\s+ден`)
	// OCR regularly turns a currency sign into a stray letter glued to the
	// number ("S12.50", "§9.99"). Strip the glyph, keep the number.
	reCorruptCurrency = regexp.MustCompile(`^[S§s$£€](\d[\d.,]*)$`)
)

const minItemLineLen = 5

// lineItemStrategy parses one candidate line into a line item.
// One implementation per locale, registered in itemStrategies.
type lineItemStrategy interface {
	ParseLine(line string, vatPercent float64) (entity.LineItem, bool)
}

var itemStrategies = map[constants.Locale]lineItemStrategy{
	constants.LocaleMK: mkItemStrategy{},
	constants.LocaleEN: enItemStrategy{},
}

// ItemExtractor segments candidate text lines into line items, gated by
// the recognition confidence threshold.
type ItemExtractor struct {
	cfg common.ExtractConfig
}

func NewItemExtractor(cfg common.ExtractConfig) *ItemExtractor {
	return &ItemExtractor{cfg: cfg}
}

// Extract returns the ordered line items found in the text, capped at the
// configured maximum. Below the confidence threshold it returns nothing at
// all: low-quality recognition must not fabricate numbers, the operator
// enters items manually instead.
func (e *ItemExtractor) Extract(lines []string, loc constants.Locale, confidence float64, supplier string, vatPercent float64) []entity.LineItem {
	if confidence < e.cfg.MinItemConfidence {
		return nil
	}

	strategy, ok := itemStrategies[loc]
	if !ok {
		strategy = itemStrategies[constants.LocaleEN]
	}

	// Primary pass: the table region below the header line.
	region := lines
	if idx := findTableHeader(lines); idx >= 0 {
		region = lines[idx+1:]
	}
	items := e.scan(region, strategy, supplier, vatPercent)

	// Recovery pass: some documents have no recognizable header at all, or
	// the header itself was garbled. Re-scan everything.
	if len(items) == 0 {
		items = e.scan(lines, strategy, supplier, vatPercent)
	}
	return items
}

func (e *ItemExtractor) scan(lines []string, strategy lineItemStrategy, supplier string, vatPercent float64) []entity.LineItem {
	var items []entity.LineItem
	for _, line := range lines {
		if len(items) >= e.cfg.MaxItems {
			break
		}
		if !itemCandidate(line) || line == supplier {
			continue
		}
		if item, ok := strategy.ParseLine(line, vatPercent); ok {
			items = append(items, item)
		}
	}
	return items
}

func itemCandidate(line string) bool {
	if len([]rune(line)) < minItemLineLen {
		return false
	}
	if reSkipLine.MatchString(line) || reNumericLine.MatchString(line) || reContactMarker.MatchString(line) {
		return false
	}
	return true
}

// mkItemStrategy parses the domestic table row shape:
//
//	01 Производ 1   2   100,00 ден   200,00 ден
//
// The segment before the first currency token carries row index, name,
// quantity and unit price; quantity and price are always the last two
// numeric tokens, the name sits strictly between the row index and the
// quantity.
type mkItemStrategy struct{}

func (mkItemStrategy) ParseLine(line string, vatPercent float64) (entity.LineItem, bool) {
	segments := reDenSplit.Split(line, -1)
	if len(segments) < 2 {
		return entity.LineItem{}, false
	}

	tokens := strings.Fields(segments[0])
	var numIdx []int
	for i, tok := range tokens {
		if reNumericToken.MatchString(tok) {
			numIdx = append(numIdx, i)
		}
	}
	// row index, quantity, unit price
	if len(numIdx) < 3 {
		return entity.LineItem{}, false
	}

	qtyIdx := numIdx[len(numIdx)-2]
	priceIdx := numIdx[len(numIdx)-1]
	qty, ok := ParseNumber(tokens[qtyIdx], constants.LocaleMK)
	if !ok || qty <= 0 {
		qty = 1
	}
	price, ok := ParseNumber(tokens[priceIdx], constants.LocaleMK)
	if !ok || price <= 0 {
		return entity.LineItem{}, false
	}

	name := strings.TrimSpace(strings.Join(tokens[numIdx[0]+1:qtyIdx], " "))
	if len([]rune(name)) < 3 {
		return entity.LineItem{}, false
	}
	return entity.LineItem{Name: name, Qty: qty, UnitPrice: price, VATPercent: vatPercent}, true
}

// enItemStrategy classifies the numbers of a whitespace-tokenized line by
// magnitude: quantities are small, prices usually are not.
type enItemStrategy struct{}

func (enItemStrategy) ParseLine(line string, vatPercent float64) (entity.LineItem, bool) {
	tokens := strings.Fields(line)

	type numTok struct {
		idx int
		val float64
	}
	var nums []numTok
	for i, tok := range tokens {
		repaired := repairCurrencyGlyph(tok)
		if !reNumericToken.MatchString(repaired) {
			continue
		}
		if v, ok := ParseNumber(repaired, constants.LocaleEN); ok {
			tokens[i] = repaired
			nums = append(nums, numTok{idx: i, val: v})
		}
	}
	if len(nums) == 0 {
		return entity.LineItem{}, false
	}

	var qty, price float64
	switch {
	case len(nums) == 1:
		qty, price = 1, nums[0].val
	case len(nums) >= 3 && nums[0].val >= 1 && nums[0].val <= 100 && nums[1].val > nums[0].val:
		qty, price = nums[0].val, nums[1].val
	case nums[0].val <= 100 && nums[len(nums)-1].val > nums[0].val:
		qty = nums[0].val
		if len(nums) >= 3 {
			price = nums[len(nums)-2].val
		} else {
			price = nums[len(nums)-1].val
		}
	default:
		qty = 1
		if len(nums) >= 3 {
			price = nums[len(nums)-2].val
		} else {
			price = nums[len(nums)-1].val
		}
	}
	if qty <= 0 {
		qty = 1
	}
	if price <= 0 {
		return entity.LineItem{}, false
	}

	name := strings.TrimSpace(strings.Join(tokens[:nums[0].idx], " "))
	if name == "" && len(nums) > 1 {
		name = strings.TrimSpace(strings.Join(tokens[nums[0].idx+1:nums[1].idx], " "))
	}
	if len([]rune(name)) < 2 {
		return entity.LineItem{}, false
	}
	return entity.LineItem{Name: name, Qty: qty, UnitPrice: price, VATPercent: vatPercent}, true
}

func repairCurrencyGlyph(tok string) string {
	if m := reCorruptCurrency.FindStringSubmatch(tok); m != nil {
		return m[1]
	}
	return tok
}

package extract

import (
	"regexp"
	"strings"

	"github.com/petarmilev/invoice-recon/constants"
)

// fieldRule is one entry of an ordered extraction list: the first rule
// whose pattern produces a non-empty capture wins. Keeping the rules as a
// slice (instead of cascading conditionals) keeps the precedence auditable
// and testable in isolation.
type fieldRule struct {
	name string
	re   *regexp.Regexp
}

func (r fieldRule) apply(text string) string {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Document-number rules. en tries a code-prefixed pattern before bare
// digits; mk matches the domestic N/YYYY token.
var docNumberRules = map[constants.Locale][]fieldRule{
	constants.LocaleEN: {
		{"code-prefixed", regexp.MustCompile(`(?i)(?:invoice|order|ref)[\s#:no.]*\s*([A-Z]+[A-Z0-9]*[-/][A-Z0-9\-/]*\d[A-Z0-9\-/]*)`)},
		{"bare-digits", regexp.MustCompile(`(?i)(?:invoice|order|number|no\.?|#)[\s#:]*(\d+)`)},
	},
	constants.LocaleMK: {
		{"slash-year", regexp.MustCompile(`(?i)(?:Фактура|Број|Broj)?\s*(\d+/\d{2,4})`)},
	},
}

// Date-shape scanners per locale. mk documents use dotted dates; en ones
// also use slashes and dashes, optionally year-first.
var dateScanners = map[constants.Locale]*regexp.Regexp{
	constants.LocaleMK: regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{2,4}`),
	constants.LocaleEN: regexp.MustCompile(`\d{4}[.\-/]\d{1,2}[.\-/]\d{1,2}|\d{1,2}[.\-/]\d{1,2}[.\-/]\d{2,4}`),
}

// Table-header detection: a line carrying column-header keywords marks the
// start of the item table; everything above it is the header region.
var reTableHeader = regexp.MustCompile(`(?i)Бр\.|ОПИС|КОЛ|ЦЕНА|Артикол|Item|Qty|Price|Description`)

// Supplier rejection rules for the header region.
// \b is ASCII-only in RE2, so the Cyrillic alternatives need explicit
// delimiter classes instead of word boundaries.
var (
	reLabelLine    = regexp.MustCompile(`(?i)^(Назив|Адреса|Град|Датум|Фактура|Invoice|Date|Phone|Email|Tel|Fax)(?:[\s:.,]|$)`)
	reDigitsOnly   = regexp.MustCompile(`^[\d\s]+$`)
	reContactLine  = regexp.MustCompile(`(?i)@|https?://|www\.|\.com\b`)
	reLegalEntity  = regexp.MustCompile(`(?i)(?:^|\s)(Ltd|Inc|LLC|Corp|GmbH|ДООЕЛ|ДОО|АД)(?:[\s.,]|$)`)
	reDocVAT       = regexp.MustCompile(`(?i)(?:ДДВ|VAT)\s*:?\s*([0-9]{1,2}(?:[.,][0-9]+)?)\s*%`)
	reHasLowercase = regexp.MustCompile(`\p{Ll}`)
)

const minSupplierLen = 6

// FieldExtractor pulls document-level fields out of recognized text using
// the ordered, locale-specific rule lists above.
type FieldExtractor struct {
	locale constants.Locale
}

func NewFieldExtractor(locale constants.Locale) *FieldExtractor {
	return &FieldExtractor{locale: locale}
}

// DocNumber returns the first document-number match, or "" for manual entry.
func (f *FieldExtractor) DocNumber(text string) string {
	for _, rule := range docNumberRules[f.locale] {
		if v := rule.apply(text); v != "" {
			return v
		}
	}
	return ""
}

// Dates scans for all date-shaped substrings in the locale's expected
// shape. The first occurrence is the issue date, the second (if any) the
// due date, both normalized to ISO form.
func (f *FieldExtractor) Dates(text string) (issue, due string) {
	matches := dateScanners[f.locale].FindAllString(text, -1)
	if len(matches) > 0 {
		issue = NormalizeDate(matches[0], f.locale)
	}
	if len(matches) > 1 {
		due = NormalizeDate(matches[1], f.locale)
	}
	return issue, due
}

// Supplier scans only the lines above the first table-header line and
// returns the first qualifying line. Label lines, pure digits, short lines
// and contact lines never qualify. For en, lines carrying a legal-entity
// suffix or written in all caps are preferred over the plain first match.
func (f *FieldExtractor) Supplier(lines []string) string {
	region := lines
	if idx := findTableHeader(lines); idx >= 0 {
		region = lines[:idx]
	}
	// A header keyword on the very first line (a "Фактура бр. …" title, say)
	// would leave no region at all; scan everything in that case and rely on
	// the rejection rules to skip table rows.
	if len(region) == 0 {
		region = lines
	}

	var first string
	for _, line := range region {
		if !supplierCandidate(line) {
			continue
		}
		// "до:" introduces the buyer; the remainder is the counterparty name.
		if i := strings.Index(line, "до:"); i >= 0 {
			if rest := strings.TrimSpace(line[i+len("до:"):]); rest != "" {
				return rest
			}
			continue
		}
		if f.locale == constants.LocaleEN {
			if reLegalEntity.MatchString(line) || isAllCaps(line) {
				return line
			}
			if first == "" {
				first = line
			}
			continue
		}
		return line
	}
	return first
}

// Currency maps the first known currency token to a code, falling back to
// the locale default when the text names no currency at all.
func (f *FieldExtractor) Currency(text string) constants.Currency {
	if c, ok := constants.CanonicalizeCurrency(text); ok {
		return c
	}
	return constants.DefaultCurrencyFor(f.locale)
}

// DocumentVAT returns the document-level VAT percentage if stated
// ("ДДВ 18%", "VAT 20%"), else the given default. VAT is never read per
// line item.
func (f *FieldExtractor) DocumentVAT(lines []string, fallback float64) float64 {
	for _, line := range lines {
		m := reDocVAT.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if v, ok := ParseNumber(strings.ReplaceAll(m[1], ",", "."), constants.LocaleEN); ok {
			return v
		}
	}
	return fallback
}

func supplierCandidate(line string) bool {
	if len([]rune(line)) < minSupplierLen {
		return false
	}
	if reLabelLine.MatchString(line) || reDigitsOnly.MatchString(line) || reContactLine.MatchString(line) {
		return false
	}
	return true
}

func isAllCaps(line string) bool {
	return !reHasLowercase.MatchString(line) && strings.IndexFunc(line, isLetter) >= 0
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		(r >= 'А' && r <= 'я')
}

// findTableHeader returns the index of the first table-header line, or -1.
func findTableHeader(lines []string) int {
	for i, line := range lines {
		if reTableHeader.MatchString(line) {
			return i
		}
	}
	return -1
}

// splitLines trims and drops empty lines of recognized text.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

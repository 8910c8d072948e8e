package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/petarmilev/invoice-recon/constants"
)

var (
	reYearFirstDate = regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})[.\-/](\d{1,2})`)
	reDayFirstDate  = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{4})`)
	reShortYearDate = regexp.MustCompile(`(\d{1,2})[.\-/](\d{1,2})[.\-/](\d{2})\b`)
)

// ParseDate converts a locale-formatted date substring to ISO YYYY-MM-DD.
// Formats are tried in fixed order: DD.MM.YYYY, YYYY.MM.DD (recognized by a
// leading group that cannot be a day), DD.MM.YY (two-digit years are
// 2000s). Slash-separated dates resolve day/month order by locale: en is
// month-first. The boolean reports whether any format matched; no calendar
// validity checking is done beyond the structural shape.
func ParseDate(raw string, loc constants.Locale) (string, bool) {
	if m := reYearFirstDate.FindStringSubmatch(raw); m != nil {
		if y, _ := strconv.Atoi(m[1]); y > 31 {
			return isoDate(m[1], m[2], m[3]), true
		}
	}
	if m := reDayFirstDate.FindStringSubmatch(raw); m != nil {
		day, month := m[1], m[2]
		if monthFirst(raw, loc) {
			day, month = month, day
		}
		return isoDate(m[3], month, day), true
	}
	if m := reShortYearDate.FindStringSubmatch(raw); m != nil {
		day, month := m[1], m[2]
		if monthFirst(raw, loc) {
			day, month = month, day
		}
		return isoDate("20"+m[3], month, day), true
	}
	return raw, false
}

// NormalizeDate is ParseDate with the soft-failure contract the rest of the
// pipeline relies on: input that matches no known format is returned
// unchanged, signalling manual entry rather than an error.
func NormalizeDate(raw string, loc constants.Locale) string {
	out, _ := ParseDate(raw, loc)
	return out
}

// monthFirst reports whether the first number of a date is the month.
// Only slash-separated en dates are month-first; dotted and dashed dates
// are day-first everywhere.
func monthFirst(raw string, loc constants.Locale) bool {
	return loc == constants.LocaleEN && strings.Contains(raw, "/")
}

func isoDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ParseNumber converts a locale-formatted numeric substring to a float.
// Locale mk treats '.' as the thousands separator and ',' as the decimal
// separator; locale en is the inverse.
func ParseNumber(raw string, loc constants.Locale) (float64, bool) {
	v, err := strconv.ParseFloat(NormalizeNumber(raw, loc), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeNumber strips thousands separators and canonicalizes the decimal
// separator to '.'. Like NormalizeDate it never fails: output that still
// does not parse is the caller's signal that the token was not a number.
func NormalizeNumber(raw string, loc constants.Locale) string {
	s := strings.TrimSpace(raw)
	if loc == constants.LocaleMK {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
		return s
	}
	return strings.ReplaceAll(s, ",", "")
}

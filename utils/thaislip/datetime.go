package thaislip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// buddhistEraOffset is the distance between Buddhist Era and Gregorian years.
const buddhistEraOffset = 543

// Thai month abbreviations in calendar order; dots are optional in matching
// because OCR drops them.
var thaiMonths = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var (
	thaiMonthIndex   = buildThaiMonthIndex()
	thaiMonthPattern = buildThaiMonthPattern()

	// 1 ส.ค. 68, 1d ส.ค. 68, 15 ก.ย. 2567
	thaiDatePattern    = regexp.MustCompile(`(?:^|[^\d])(\d{1,2})[^\d\s]{0,3}\s*(` + thaiMonthPattern + `)\s*(\d{2,4})`)
	thaiMonthMarker    = regexp.MustCompile(thaiMonthPattern)
	numericDatePattern = regexp.MustCompile(`(?:^|[^\d])(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})(?:[^\d]|$)`)
	numberPattern      = regexp.MustCompile(`\d+`)
	allNumbersPattern  = regexp.MustCompile(`\d+[,.]?\d*`)
)

var dateRules = []rule[string]{
	{pattern: thaiDatePattern, accept: acceptThaiDate},
	{pattern: numericDatePattern, accept: acceptNumericDate},
}

var timeRules = []rule[string]{
	// 15:33
	{pattern: regexp.MustCompile(`(?:^|[^\d])(\d{1,2}):(\d{2})(?:[^\d]|$)`), accept: acceptTime},
	// 15.33 น.
	{pattern: regexp.MustCompile(`(?:^|[^\d])(\d{1,2})\.(\d{2})\s*น\.`), accept: acceptTime},
}

func buildThaiMonthPattern() string {
	alternatives := make([]string, len(thaiMonths))
	for i, m := range thaiMonths {
		alternatives[i] = strings.ReplaceAll(regexp.QuoteMeta(m), `\.`, `\.?`)
	}
	return strings.Join(alternatives, "|")
}

func buildThaiMonthIndex() map[string]int {
	index := make(map[string]int, len(thaiMonths))
	for i, m := range thaiMonths {
		index[strings.ReplaceAll(m, ".", "")] = i + 1
	}
	return index
}

func monthFromAbbreviation(abbr string) (int, bool) {
	m, ok := thaiMonthIndex[strings.ReplaceAll(abbr, ".", "")]
	return m, ok
}

// ConvertBuddhistYear turns a year printed on a slip into a Gregorian year.
// Two digits are a short Buddhist Era year (68 → 2025), four digits above
// 2500 are a full Buddhist Era year (2568 → 2025), anything else is taken as
// Gregorian already.
func ConvertBuddhistYear(year string) (int, error) {
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", year, err)
	}
	switch {
	case len(year) == 2:
		return 2500 + n - buddhistEraOffset, nil
	case len(year) == 4 && n > 2500:
		return n - buddhistEraOffset, nil
	default:
		return n, nil
	}
}

func formatDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

func acceptThaiDate(groups []string) (string, bool) {
	day, err := strconv.Atoi(groups[1])
	if err != nil {
		return "", false
	}
	month, ok := monthFromAbbreviation(groups[2])
	if !ok {
		return "", false
	}
	year, err := ConvertBuddhistYear(groups[3])
	if err != nil {
		return "", false
	}
	return formatDate(year, month, day)
}

// acceptNumericDate reads D/M/Y. Short years are taken as 20yy without a
// Buddhist Era correction; full Buddhist Era years are still converted.
func acceptNumericDate(groups []string) (string, bool) {
	day, err1 := strconv.Atoi(groups[1])
	month, err2 := strconv.Atoi(groups[2])
	year, err3 := strconv.Atoi(groups[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	switch {
	case len(groups[3]) == 2:
		year += 2000
	case len(groups[3]) == 4 && year > 2500:
		year -= buddhistEraOffset
	}
	return formatDate(year, month, day)
}

func acceptTime(groups []string) (string, bool) {
	hour, err1 := strconv.Atoi(groups[1])
	minute, err2 := strconv.Atoi(groups[2])
	if err1 != nil || err2 != nil || hour > 23 || minute > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

// ExtractDate returns the slip date as YYYY-MM-DD, trying Thai month
// abbreviations before numeric D/M/Y. Empty when nothing matches.
func ExtractDate(raw string) string {
	date, _ := firstAccepted(raw, dateRules)
	return date
}

// ExtractTime returns the first H:MM in raw as HH:MM, or empty.
func ExtractTime(raw string) string {
	t, _ := firstAccepted(raw, timeRules)
	return t
}

// EstimateDateTime is the last resort when no date or time marker exists:
// the first four numbers are read as day, year (mod 100), hour and minute.
// The month comes from any Thai month abbreviation in the text; without one
// only the time can be estimated.
func EstimateDateTime(raw string) (date, clock string) {
	numbers := numberPattern.FindAllString(raw, 4)
	if len(numbers) < 4 {
		return "", ""
	}

	day, hour, minute := smallNumber(numbers[0]), smallNumber(numbers[2]), smallNumber(numbers[3])
	shortYear := smallNumber(numbers[1][max(0, len(numbers[1])-2):])

	if hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
		clock = fmt.Sprintf("%02d:%02d", hour, minute)
	}

	if abbr := thaiMonthMarker.FindString(raw); abbr != "" {
		if month, ok := monthFromAbbreviation(abbr); ok {
			year, _ := ConvertBuddhistYear(fmt.Sprintf("%02d", shortYear))
			date, _ = formatDate(year, month, day)
		}
	}

	return date, clock
}

// smallNumber parses a digit run, or returns -1 when it does not fit an int.
func smallNumber(digits string) int {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return -1
	}
	return v
}

// Numbers lists every number-looking token in raw, as printed.
func Numbers(raw string) []string {
	found := allNumbersPattern.FindAllString(raw, -1)
	if found == nil {
		return []string{}
	}
	return found
}

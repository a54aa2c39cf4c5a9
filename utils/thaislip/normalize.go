package thaislip

import "strings"

// Normalize returns the numerals-safe view of text used for amount and fee
// extraction. It strips ฿, repairs OCR letter/digit confusions (O o → 0,
// l I | → 1, stray B dropped) inside number-like tokens only, then removes
// thousands separators between digit groups. Thai script and words without
// digits are left alone. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "฿", "")

	runes := []rune(text)
	runes = repairNumberTokens(runes)
	runes = dropCommaSeparators(runes)
	runes = dropSpaceSeparators(runes)

	return string(runes)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isNumberGlyph reports characters OCR produces inside numbers on slip fonts.
func isNumberGlyph(r rune) bool {
	if isDigit(r) {
		return true
	}
	switch r {
	case 'O', 'o', 'l', 'I', '|', '.', 'B':
		return true
	}
	return false
}

// repairNumberTokens rewrites every maximal run of number glyphs that holds at
// least one real digit. Runs without a digit ("Total", "Bill") are kept.
func repairNumberTokens(runes []rune) []rune {
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); {
		if !isNumberGlyph(runes[i]) || trailsWord(runes, i) {
			out = append(out, runes[i])
			i++
			continue
		}

		j := i
		hasDigit := false
		for j < len(runes) && isNumberGlyph(runes[j]) {
			if isDigit(runes[j]) {
				hasDigit = true
			}
			j++
		}

		for _, r := range runes[i:j] {
			if !hasDigit {
				out = append(out, r)
				continue
			}
			switch r {
			case 'O', 'o':
				out = append(out, '0')
			case 'l', 'I', '|':
				out = append(out, '1')
			case 'B':
				// ฿ read as a latin letter
			default:
				out = append(out, r)
			}
		}
		i = j
	}

	return out
}

// trailsWord reports an l or I that continues a Latin word ("Total100").
func trailsWord(runes []rune, i int) bool {
	if runes[i] != 'l' && runes[i] != 'I' || i == 0 {
		return false
	}
	prev := runes[i-1]
	return prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z'
}

// dropCommaSeparators removes commas sitting between two digits ("1,234").
func dropCommaSeparators(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r == ',' && i > 0 && i+1 < len(runes) && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// dropSpaceSeparators removes a space used as a thousands separator: a group
// of one to three digits before it and exactly three digits after it
// ("1 000", "12 345.67"). A group that ends a time, a decimal or a date
// ("09:10 500", "2567 500") is not a thousands group.
func dropSpaceSeparators(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if (r == ' ' || r == '\u00a0') && leadsThousandsGroup(runes, i) && digitRunLength(runes, i+1) == 3 {
			continue
		}
		out = append(out, r)
	}
	return out
}

func leadsThousandsGroup(runes []rune, space int) bool {
	start := space
	for start > 0 && isDigit(runes[start-1]) {
		start--
	}
	if n := space - start; n < 1 || n > 3 {
		return false
	}
	if start == 0 {
		return true
	}
	switch runes[start-1] {
	case ':', '.', '/':
		return false
	}
	return true
}

func digitRunLength(runes []rune, from int) int {
	n := 0
	for from+n < len(runes) && isDigit(runes[from+n]) {
		n++
	}
	return n
}

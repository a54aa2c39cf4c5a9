package thaislip

import "regexp"

var referenceRules = []rule[string]{
	{pattern: regexp.MustCompile(`เลขที่\s*รายการ\s*[:：]?\s*(\d+)`), accept: firstGroup},
	{pattern: regexp.MustCompile(`รหัส\s*อ้างอิง\s*[:：]?\s*(\d+)`), accept: firstGroup},
	{pattern: regexp.MustCompile(`รายการ\s*[:：]?\s*(\d+)`), accept: firstGroup},
	{pattern: regexp.MustCompile(`(?i)\b(?:reference|ref)\.?(?:\s*(?:no|number|id)\.?)?\s*[:：]?\s*(\d+)`), accept: firstGroup},
	{pattern: regexp.MustCompile(`(?i)\btransaction\s*(?:no|number|id)\.?\s*[:：]?\s*(\d+)`), accept: firstGroup},
	{pattern: regexp.MustCompile(`\b(\d{10,})\b`), accept: firstGroup},
}

// ExtractReference returns the transaction reference exactly as printed, so
// leading zeros survive. Empty when nothing matches.
func ExtractReference(raw string) string {
	ref, _ := firstAccepted(raw, referenceRules)
	return ref
}

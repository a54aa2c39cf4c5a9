package thaislip

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Amounts outside this range are treated as stray numbers.
var (
	minAmount = decimal.NewFromInt(1)
	maxAmount = decimal.NewFromInt(1_000_000)
)

var amountRules = []rule[decimal.Decimal]{
	// จำนวน: 100.00 / Amount - 100.00
	{
		pattern: regexp.MustCompile(`(?i)(?:จำนวนเงิน|จำนวน|ยอดสุทธิ|ยอดเงิน|ยอดรวม|ยอดชำระ|ยอด|\b(?:amount|total|net)\b)\s*[:\-]?\s*(\d+(?:\.\d{1,2})?)`),
		accept:  acceptAmount,
	},
	// 100.00 บาท / 100.00 THB
	{
		pattern: regexp.MustCompile(`(?i)(\d+(?:\.\d{1,2})?)\s*(?:บาท|baht|thb|฿)`),
		accept:  acceptAmount,
	},
	{
		pattern: regexp.MustCompile(`\b(\d+\.\d{2})\b`),
		accept:  acceptAmount,
	},
	{
		pattern: regexp.MustCompile(`(\d{2,})`),
		accept:  acceptAmount,
	},
}

var feeRules = []rule[decimal.Decimal]{
	{
		pattern: regexp.MustCompile(`ค่าธรรมเนียม\s*[:\-]?\s*(\d+(?:\.\d+)?)`),
		accept:  acceptDecimal,
	},
	{
		pattern: regexp.MustCompile(`(?i)\bfees?\s*[:\-]?\s*(\d+(?:\.\d+)?)`),
		accept:  acceptDecimal,
	},
	{
		pattern: regexp.MustCompile(`ธรรมเนียม\s*[:\-]?\s*(\d+(?:\.\d+)?)`),
		accept:  acceptDecimal,
	},
}

func acceptDecimal(groups []string) (decimal.Decimal, bool) {
	s, ok := firstGroup(groups)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func acceptAmount(groups []string) (decimal.Decimal, bool) {
	d, ok := acceptDecimal(groups)
	if !ok || d.LessThan(minAmount) || d.GreaterThan(maxAmount) {
		return decimal.Zero, false
	}
	return d, true
}

// ExtractAmount finds the transaction amount in normalized text.
// It returns nil when no pattern yields a value inside the sanity bound.
func ExtractAmount(normalized string) *decimal.Decimal {
	amount, ok := firstAccepted(normalized, amountRules)
	if !ok {
		return nil
	}
	return &amount
}

// ExtractFee finds the fee in normalized text. A missing fee is zero, not absent.
func ExtractFee(normalized string) decimal.Decimal {
	fee, ok := firstAccepted(normalized, feeRules)
	if !ok {
		return decimal.Zero
	}
	return fee
}

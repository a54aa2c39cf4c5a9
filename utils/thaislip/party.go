package thaislip

import (
	"regexp"
	"strings"
)

const (
	// xxx-x-x9745-x, the masked account printed on Thai e-slips
	maskedAccount = `[xX]{3}-[xX]-[xX]\d+(?:-[xX])?`
	honorific     = `(?:นางสาว|นาย|นาง|น\.ส\.|ด\.ช\.|ด\.ญ\.|(?i:\b(?:mrs|mr|ms|miss)\.?\s))`
	// ธ.กสิกรไทย
	bankMarker = `ธ\.[^\n]*?`
)

var (
	maskedAccountPattern = regexp.MustCompile(maskedAccount)
	trailingBankMarker   = regexp.MustCompile(`\s*ธ\.\S*\s*$`)
	// labels that end a free-text party segment
	partyStopLabels = regexp.MustCompile(`(?i)(?:ถึง|ไปยัง|ผู้รับ|จาก|ผู้โอน|จำนวน|ค่าธรรมเนียม|เลขที่|รหัสอ้างอิง|วันที่|\bto\s*[:：]|\bfrom\s*[:：]|\bamount\b|\bfees?\b|\bref)`)
)

var senderRules = []rule[Party]{
	{
		pattern: regexp.MustCompile(`(` + honorific + `[^\n]{1,60}?)\s*(?:` + bankMarker + `)?\s*(` + maskedAccount + `)`),
		accept:  acceptNameAccount,
	},
	{pattern: regexp.MustCompile(`(?:จาก|ผู้โอน)\s*[:：]\s*([^\n]+)`), accept: acceptLabelledParty},
	{pattern: regexp.MustCompile(`(?i)\b(?:from|sender)\s*[:：]\s*([^\n]+)`), accept: acceptLabelledParty},
}

var recipientRules = []rule[Party]{
	// the pair that follows the sender's bank marker and account
	{
		pattern: regexp.MustCompile(`ธ\.\S*\s*` + maskedAccount + `\s*([^\n]{1,60}?)\s*(?:` + bankMarker + `)?\s*(` + maskedAccount + `)`),
		accept:  acceptNameAccount,
	},
	{pattern: regexp.MustCompile(`(?:ถึง|ไปยัง|ผู้รับ)\s*[:：]\s*([^\n]+)`), accept: acceptLabelledParty},
	{pattern: regexp.MustCompile(`(?i)\b(?:to|recipient|receiver)\s*[:：]\s*([^\n]+)`), accept: acceptLabelledParty},
}

// ExtractSender returns the paying party, or nil.
func ExtractSender(raw string) *Party {
	p, ok := firstAccepted(raw, senderRules)
	if !ok {
		return nil
	}
	return &p
}

// ExtractRecipient returns the receiving party, or nil.
func ExtractRecipient(raw string) *Party {
	p, ok := firstAccepted(raw, recipientRules)
	if !ok {
		return nil
	}
	return &p
}

func acceptNameAccount(groups []string) (Party, bool) {
	if len(groups) < 3 {
		return Party{}, false
	}
	name := cleanPartyName(groups[1])
	if name == "" {
		return Party{}, false
	}
	return Party{Name: name, Account: groups[2]}, true
}

// acceptLabelledParty reads "name [ธ.bank] [account]" after a from/to label,
// stopping at the next known label.
func acceptLabelledParty(groups []string) (Party, bool) {
	segment, ok := firstGroup(groups)
	if !ok {
		return Party{}, false
	}
	if loc := partyStopLabels.FindStringIndex(segment); loc != nil {
		segment = segment[:loc[0]]
	}

	var account string
	if loc := maskedAccountPattern.FindStringIndex(segment); loc != nil {
		account = segment[loc[0]:loc[1]]
		segment = segment[:loc[0]]
	}

	name := cleanPartyName(segment)
	if name == "" {
		return Party{}, false
	}
	return Party{Name: name, Account: account}, true
}

func cleanPartyName(s string) string {
	s = trailingBankMarker.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, ":：-, ")
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) && r != ' ' }) < 0 {
		return ""
	}
	return s
}

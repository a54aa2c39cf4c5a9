package thaislip

import (
	"strings"

	"golang.org/x/text/cases"
)

// TransactionType is one entry of the ordered transaction catalog.
type TransactionType struct {
	Code        TransactionCode
	Category    string
	Description string
	Keywords    []string
}

// Bank is one entry of the ordered bank catalog.
type Bank struct {
	Code     BankCode
	Keywords []string
}

// Catalog order decides ties: the first entry with a matching keyword wins.
var transactionTypes = []TransactionType{
	{
		Code:        TransactionTopup,
		Category:    "เติมเงิน",
		Description: "โอนเงินเข้าบัญชีอื่น",
		Keywords:    []string{"เติมเงิน", "เติม เงิน", "top up", "topup", "top-up", "เติมวอลเล็ต"},
	},
	{
		Code:        TransactionPayment,
		Category:    "ชำระเงิน",
		Description: "โอนเงินหรือจ่ายเงินค่าสินค้าและบริการ",
		Keywords:    []string{"ชำระเงิน", "ชำระ เงิน", "payment", "จ่ายเงิน", "จ่ายสินค้า"},
	},
	{
		Code:        TransactionBillPayment,
		Category:    "จ่ายบิล",
		Description: "ชำระค่าสินค้าและบริการ เช่น ค่าไฟฟ้า น้ำ โทรศัพท์",
		Keywords:    []string{"จ่ายบิล", "จ่าย บิล", "pay bill", "bill payment", "ชำระค่า", "ค่าไฟ", "ค่าน้ำ", "ค่าโทรศัพท์"},
	},
	{
		Code:        TransactionTransfer,
		Category:    "โอนเงิน",
		Description: "โอนเงินจากบัญชีของคุณไปยังบัญชีอื่น",
		Keywords:    []string{"โอนเงิน", "โอน เงิน", "transfer", "โอนเงินสำเร็จ", "บัญชีปลายทาง"},
	},
}

var unknownTransaction = TransactionType{
	Code:        TransactionUnknown,
	Category:    "ไม่ระบุ",
	Description: "ไม่สามารถระบุประเภทธุรกรรมได้",
}

var banks = []Bank{
	{Code: BankKBank, Keywords: []string{"กสิกร", "kbank", "kasikorn", "k-bank", "k plus"}},
	{Code: BankKTB, Keywords: []string{"กรุงไทย", "ktb", "krungthai", "krung thai"}},
	{Code: BankSCB, Keywords: []string{"ไทยพาณิชย์", "scb", "siam commercial"}},
	{Code: BankBBL, Keywords: []string{"กรุงเทพ", "bbl", "bangkok bank", "bualuang"}},
	{Code: BankBAY, Keywords: []string{"กรุงศรี", "bay", "krungsri"}},
	{Code: BankTTB, Keywords: []string{"ทหารไทย", "ttb", "tmb", "thanachart", "ธนชาต"}},
}

// TransactionTypes returns a copy of the transaction catalog in match order.
func TransactionTypes() []TransactionType {
	out := make([]TransactionType, len(transactionTypes))
	for i, t := range transactionTypes {
		t.Keywords = append([]string(nil), t.Keywords...)
		out[i] = t
	}
	return out
}

// UnknownTransaction is returned when no catalog keyword matches.
func UnknownTransaction() TransactionType {
	return unknownTransaction
}

// Banks returns a copy of the bank catalog in match order.
func Banks() []Bank {
	out := make([]Bank, len(banks))
	for i, b := range banks {
		b.Keywords = append([]string(nil), b.Keywords...)
		out[i] = b
	}
	return out
}

// foldCase returns the case-folded form used for keyword matching.
// A Caser keeps state, so each call builds its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

func foldKeywords(keywords []string) []string {
	folded := make([]string, len(keywords))
	for i, k := range keywords {
		folded[i] = foldCase(k)
	}
	return folded
}

// firstInCatalog returns the index of the first entry whose keywords appear in
// the folded text, or -1.
func firstInCatalog(folded string, keywords [][]string) int {
	for i, kws := range keywords {
		for _, kw := range kws {
			if strings.Contains(folded, kw) {
				return i
			}
		}
	}
	return -1
}

package thaislip

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detections builds a detection list from alternating text, confidence pairs.
func detections(pairs ...any) []dto.OCRDetection {
	out := make([]dto.OCRDetection, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, dto.OCRDetection{Text: pairs[i].(string), Confidence: pairs[i+1].(float64)})
	}
	return out
}

func fromText(text string) []dto.OCRDetection {
	return []dto.OCRDetection{{Text: text, Confidence: 1}}
}

func TestParseEmpty(t *testing.T) {
	r, err := New().Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, UnknownTransaction(), r.TransactionType)
	assert.Equal(t, "ไม่ระบุ", r.TransactionType.Category)
	assert.Nil(t, r.Amount)
	assert.True(t, r.Fee.IsZero())
	assert.Nil(t, r.TotalAmount)
	assert.Empty(t, r.ReferenceNumber)
	assert.Nil(t, r.FromAccount)
	assert.Nil(t, r.ToAccount)
	assert.Empty(t, r.Date)
	assert.Empty(t, r.Time)
	assert.False(t, r.DateTimeEstimated)
	assert.Equal(t, BankUnknown, r.Bank)
	assert.Equal(t, "", r.RawText)
	assert.Zero(t, r.Confidence)
	assert.NotNil(t, r.AllNumbers)
	assert.Empty(t, r.AllNumbers)
}

func TestParseKasikornSlip(t *testing.T) {
	r, err := New().Parse(detections(
		"โอนเงินสำเร็จ 1d ส.ค. 68 15:33 น. i+", 0.9,
		"ด.ช. ฺพงศพัศฺต ธ.กสิกรไทย xxx-x-x9745-x", 0.8,
		"จรรยา เมาประชา ธ.กรุงไทย xxx-x-x6008-x", 0.95,
		"เลขที่ รายการ: 01522215334830r00498 จำนวน: loo.0o บาท ค่าธรรมเนียม: o.0d บาท สแกนตรวจสอบสลิป", 0.75,
	))
	require.NoError(t, err)

	assert.Equal(t, TransactionTransfer, r.TransactionType.Code)
	assert.Equal(t, "โอนเงิน", r.TransactionType.Category)
	require.NotNil(t, r.Amount)
	assert.True(t, decimal.NewFromInt(100).Equal(*r.Amount))
	assert.True(t, r.Fee.IsZero())
	assert.Nil(t, r.TotalAmount)
	assert.Equal(t, "01522215334830", r.ReferenceNumber)
	assert.Equal(t, &Party{Name: "ด.ช. ฺพงศพัศฺต", Account: "xxx-x-x9745-x"}, r.FromAccount)
	assert.Equal(t, &Party{Name: "จรรยา เมาประชา", Account: "xxx-x-x6008-x"}, r.ToAccount)
	assert.Equal(t, "2025-08-01", r.Date)
	assert.Equal(t, "15:33", r.Time)
	assert.False(t, r.DateTimeEstimated)
	assert.Equal(t, BankKBank, r.Bank)
	assert.InDelta(t, 0.85, r.Confidence, 1e-9)
	assert.True(t, strings.HasPrefix(r.RawText, "โอนเงินสำเร็จ 1d ส.ค. 68 15:33 น. i+ ด.ช."))
	assert.Contains(t, r.AllNumbers, "01522215334830")
}

func TestParseTotal(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		corrected bool
		want      string // empty means absent
	}{
		{"zero fee suppresses total", "จำนวน: 100.00 บาท ค่าธรรมเนียม: 0.00 บาท", false, ""},
		{"fee added", "จำนวน: 100.00 บาท ค่าธรรมเนียม: 15.00 บาท", false, "115"},
		{"corrected total with zero fee", "จำนวน: 100.00 บาท ค่าธรรมเนียม: 0.00 บาท", true, "100"},
		{"corrected total with fee", "จำนวน: 100.00 บาท ค่าธรรมเนียม: 15.00 บาท", true, "115"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(WithCorrectedTotal(tt.corrected)).Parse(fromText(tt.text))
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, r.TotalAmount)
				return
			}
			require.NotNil(t, r.TotalAmount)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(*r.TotalAmount), "got %s", r.TotalAmount)
		})
	}
}

func TestParseZeroFeeScenario(t *testing.T) {
	r, err := New().Parse(fromText("จำนวน: 100.00 บาท ค่าธรรมเนียม: 0.00 บาท"))
	require.NoError(t, err)

	require.NotNil(t, r.Amount)
	assert.Equal(t, "100", r.Amount.String())
	assert.True(t, r.Fee.IsZero())
	assert.Nil(t, r.TotalAmount)
}

func TestParseEstimatedDateTime(t *testing.T) {
	r, err := New().Parse(fromText("ส.ค. 3 68 10 15 โอนเงิน"))
	require.NoError(t, err)

	assert.Equal(t, "2025-08-03", r.Date)
	assert.Equal(t, "10:15", r.Time)
	assert.True(t, r.DateTimeEstimated)
}

func TestParseRejectsMalformedDetections(t *testing.T) {
	for _, c := range []float64{math.NaN(), -0.1, 1.5} {
		_, err := New().Parse(detections("จำนวน 100", 0.9, "บาท", c))
		assert.ErrorIs(t, err, ErrMalformedDetections)
	}
}

func TestClassifyTransaction(t *testing.T) {
	e := New()
	tests := []struct {
		text string
		want TransactionCode
	}{
		{"เติมเงิน พร้อมเพย์", TransactionTopup},
		{"ชำระเงิน สำเร็จ", TransactionPayment},
		{"จ่ายบิล ค่าไฟ", TransactionBillPayment},
		{"โอนเงินสำเร็จ", TransactionTransfer},
		{"PAY BILL", TransactionBillPayment},
		{"Top-Up", TransactionTopup},
		// payment comes before transfer in the catalog
		{"โอนเงิน ชำระเงิน", TransactionPayment},
		{"สแกนตรวจสอบสลิป", TransactionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ClassifyTransaction(tt.text).Code)
		})
	}
}

func TestDetectBank(t *testing.T) {
	e := New()
	tests := []struct {
		text string
		want BankCode
	}{
		{"ธ.กสิกรไทย", BankKBank},
		{"K PLUS", BankKBank},
		{"Krungthai NEXT", BankKTB},
		{"ไทยพาณิชย์", BankSCB},
		{"Bangkok Bank", BankBBL},
		{"krungsri", BankBAY},
		{"TTB touch", BankTTB},
		// kbank precedes ktb in the catalog regardless of text order
		{"KTB to KBANK", BankKBank},
		{"ไม่ทราบธนาคาร", BankUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, e.DetectBank(tt.text))
		})
	}
}

func TestCatalogOrder(t *testing.T) {
	var types []TransactionCode
	for _, tt := range TransactionTypes() {
		types = append(types, tt.Code)
	}
	assert.Equal(t, []TransactionCode{TransactionTopup, TransactionPayment, TransactionBillPayment, TransactionTransfer}, types)

	var codes []BankCode
	for _, b := range Banks() {
		codes = append(codes, b.Code)
	}
	assert.Equal(t, []BankCode{BankKBank, BankKTB, BankSCB, BankBBL, BankBAY, BankTTB}, codes)

	// callers get copies
	Banks()[0].Keywords[0] = "changed"
	assert.Equal(t, BankKBank, New().DetectBank("กสิกร"))
}

func TestDetectionIsCaseInsensitive(t *testing.T) {
	e := New()
	lower := "transfer via kbank"
	upper := "TRANSFER VIA KBANK"

	assert.Equal(t, e.DetectBank(lower), e.DetectBank(upper))
	assert.Equal(t, e.ClassifyTransaction(lower), e.ClassifyTransaction(upper))
	assert.Equal(t, BankKBank, e.DetectBank(upper))
	assert.Equal(t, TransactionTransfer, e.ClassifyTransaction(upper).Code)
}

func TestParseConcurrent(t *testing.T) {
	e := New()
	input := fromText("โอนเงินสำเร็จ 15 ก.ย. 67 09:10 จำนวน: 1,250.00 บาท SCB")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := e.Parse(input)
			if assert.NoError(t, err) {
				assert.Equal(t, "2024-09-15", r.Date)
				assert.Equal(t, BankSCB, r.Bank)
			}
		}()
	}
	wg.Wait()
}

package service

import (
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/shopspring/decimal"
)

// BuildScanResponse renders a parsed slip as the API body.
func BuildScanResponse(r *thaislip.ParsedReceipt, source string, qr *dto.SlipQR) *dto.ScanResponse {
	return &dto.ScanResponse{
		Success:       true,
		ReceiptResult: toReceiptResult(r),
		RawText:       r.RawText,
		AllNumbers:    r.AllNumbers,
		Source:        source,
		SlipQR:        qr,
	}
}

func toReceiptResult(r *thaislip.ParsedReceipt) *dto.ReceiptResult {
	return &dto.ReceiptResult{
		TransactionType: dto.TransactionTypeInfo{
			Code:        string(r.TransactionType.Code),
			Category:    r.TransactionType.Category,
			Description: r.TransactionType.Description,
		},
		Amount:            decimalPtr(r.Amount),
		Fee:               r.Fee.InexactFloat64(),
		TotalAmount:       decimalPtr(r.TotalAmount),
		ReferenceNumber:   stringPtr(r.ReferenceNumber),
		FromAccount:       accountInfo(r.FromAccount),
		ToAccount:         accountInfo(r.ToAccount),
		Date:              stringPtr(r.Date),
		Time:              stringPtr(r.Time),
		DateTimeEstimated: r.DateTimeEstimated,
		Bank:              string(r.Bank),
		Confidence:        r.Confidence,
	}
}

func decimalPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func accountInfo(p *thaislip.Party) *dto.AccountInfo {
	if p == nil {
		return nil
	}
	return &dto.AccountInfo{Name: p.Name, Account: stringPtr(p.Account)}
}

// Package thaislip extracts structured fields from OCR text of Thai bank
// transfer slips. Every field is optional; a slip where nothing is found still
// parses into a ParsedReceipt with unknown type and bank and a zero fee.
package thaislip

import (
	"fmt"
	"math"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/shopspring/decimal"
)

// Option configures an Engine.
type Option func(*Engine)

// WithCorrectedTotal makes the total Amount + Fee whenever an amount was
// found. By default a total is only reported for a non-zero amount with a
// non-zero fee.
func WithCorrectedTotal(enabled bool) Option {
	return func(e *Engine) {
		e.correctedTotal = enabled
	}
}

// Engine holds the folded catalogs. It is never mutated after New and is safe
// for concurrent use.
type Engine struct {
	transactionKeywords [][]string
	bankKeywords        [][]string
	correctedTotal      bool
}

func New(opts ...Option) *Engine {
	e := &Engine{
		transactionKeywords: make([][]string, len(transactionTypes)),
		bankKeywords:        make([][]string, len(banks)),
	}
	for i, t := range transactionTypes {
		e.transactionKeywords[i] = foldKeywords(t.Keywords)
	}
	for i, b := range banks {
		e.bankKeywords[i] = foldKeywords(b.Keywords)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClassifyTransaction returns the first catalog type whose keyword appears in
// text, ignoring case.
func (e *Engine) ClassifyTransaction(text string) TransactionType {
	i := firstInCatalog(foldCase(text), e.transactionKeywords)
	if i < 0 {
		return unknownTransaction
	}
	return transactionTypes[i]
}

// DetectBank returns the first catalog bank whose keyword appears in text,
// ignoring case.
func (e *Engine) DetectBank(text string) BankCode {
	i := firstInCatalog(foldCase(text), e.bankKeywords)
	if i < 0 {
		return BankUnknown
	}
	return banks[i].Code
}

// Parse turns one slip's detections, in reading order, into a ParsedReceipt.
// It fails only on confidences outside [0,1] or an internal fault.
func (e *Engine) Parse(detections []dto.OCRDetection) (receipt *ParsedReceipt, err error) {
	for i, d := range detections {
		if math.IsNaN(d.Confidence) || d.Confidence < 0 || d.Confidence > 1 {
			return nil, fmt.Errorf("%w: detection %d has confidence %v", ErrMalformedDetections, i, d.Confidence)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			receipt = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	return e.assemble(Aggregate(detections)), nil
}

func (e *Engine) assemble(agg AggregatedText) *ParsedReceipt {
	raw := agg.Text
	normalized := Normalize(raw)

	receipt := &ParsedReceipt{
		TransactionType: e.ClassifyTransaction(raw),
		Amount:          ExtractAmount(normalized),
		Fee:             ExtractFee(normalized),
		ReferenceNumber: ExtractReference(raw),
		FromAccount:     ExtractSender(raw),
		ToAccount:       ExtractRecipient(raw),
		Date:            ExtractDate(raw),
		Time:            ExtractTime(raw),
		Bank:            e.DetectBank(raw),
		RawText:         raw,
		Confidence:      math.Round(agg.AverageConfidence*100) / 100,
		AllNumbers:      Numbers(raw),
	}

	if receipt.Date == "" && receipt.Time == "" {
		receipt.Date, receipt.Time = EstimateDateTime(raw)
		receipt.DateTimeEstimated = receipt.Date != "" || receipt.Time != ""
	}

	receipt.TotalAmount = e.total(receipt)
	return receipt
}

func (e *Engine) total(r *ParsedReceipt) *decimal.Decimal {
	if r.Amount == nil {
		return nil
	}
	if !e.correctedTotal && (r.Amount.IsZero() || r.Fee.IsZero()) {
		return nil
	}
	total := r.Amount.Add(r.Fee)
	return &total
}

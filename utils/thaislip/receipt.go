package thaislip

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedDetections = errors.New("malformed detection list")
	ErrInternal            = errors.New("receipt parsing failed")
)

type TransactionCode string

const (
	TransactionTopup       TransactionCode = "topup"
	TransactionPayment     TransactionCode = "payment"
	TransactionBillPayment TransactionCode = "bill_payment"
	TransactionTransfer    TransactionCode = "transfer"
	TransactionUnknown     TransactionCode = "unknown"
)

type BankCode string

const (
	BankKBank   BankCode = "kbank"
	BankKTB     BankCode = "ktb"
	BankSCB     BankCode = "scb"
	BankBBL     BankCode = "bbl"
	BankBAY     BankCode = "bay"
	BankTTB     BankCode = "ttb"
	BankUnknown BankCode = "unknown"
)

// AggregatedText is the flattened OCR output every extractor reads.
type AggregatedText struct {
	Text              string
	AverageConfidence float64
}

// Party is a sender or recipient. Account is empty when only a name was found.
type Party struct {
	Name    string
	Account string
}

// ParsedReceipt is the structured view of one slip. Empty strings and nil
// pointers mean the field was not found; Fee is always set.
type ParsedReceipt struct {
	TransactionType TransactionType
	Amount          *decimal.Decimal
	Fee             decimal.Decimal
	TotalAmount     *decimal.Decimal
	ReferenceNumber string
	FromAccount     *Party
	ToAccount       *Party
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	Bank            BankCode
	RawText         string
	Confidence      float64

	// DateTimeEstimated is set when Date/Time came from the positional
	// number fallback rather than an explicit marker.
	DateTimeEstimated bool
	AllNumbers        []string
}

package dto

// OCRDetection is one recognized fragment. Bounding boxes are dropped by the clients.
type OCRDetection struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type TransactionTypeInfo struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type AccountInfo struct {
	Name    string  `json:"name"`
	Account *string `json:"account"`
}

// ReceiptResult is the JSON form of a parsed slip. Absent fields serialize as null.
type ReceiptResult struct {
	TransactionType   TransactionTypeInfo `json:"transaction_type"`
	Amount            *float64            `json:"amount"`
	Fee               float64             `json:"fee"`
	TotalAmount       *float64            `json:"total_amount"`
	ReferenceNumber   *string             `json:"reference_number"`
	FromAccount       *AccountInfo        `json:"from_account"`
	ToAccount         *AccountInfo        `json:"to_account"`
	Date              *string             `json:"date"`
	Time              *string             `json:"time"`
	DateTimeEstimated bool                `json:"datetime_estimated"`
	Bank              string              `json:"bank"`
	Confidence        float64             `json:"confidence"`
}

// SlipQR holds the verification QR printed on Thai e-slips.
type SlipQR struct {
	Payload         string `json:"payload"`
	SendingBankCode string `json:"sending_bank_code,omitempty"`
	SendingBank     string `json:"sending_bank,omitempty"`
	TransactionRef  string `json:"transaction_ref,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
}

package dto

import "errors"

// Custom errors
var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrNoTextFound     = errors.New("No text found in image")
	ErrUnsupportedFile = errors.New("file must be an image or a PDF")
	ErrOCRUnavailable  = errors.New("OCR service not available")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ScanResponse is the body returned by every receipt endpoint.
// A nil ReceiptResult means nothing was parsed (see Error).
type ScanResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	*ReceiptResult
	RawText    string   `json:"raw_text"`
	AllNumbers []string `json:"all_numbers"`
	Source     string   `json:"source,omitempty"` // "pdf_text", "paddle", "tesseract" or "detections"
	SlipQR     *SlipQR  `json:"slip_qr,omitempty"`
	SavedImage string   `json:"saved_image,omitempty"`
	Note       string   `json:"note,omitempty"`
	RequestID  string   `json:"request_id,omitempty"`
}

// NoTextResponse is the non-fatal outcome for an upload where OCR found nothing.
func NoTextResponse() *ScanResponse {
	return &ScanResponse{
		Success:    false,
		Error:      ErrNoTextFound.Error(),
		RawText:    "",
		AllNumbers: []string{},
	}
}

package dto

import (
	"fmt"
	"math"
	"mime/multipart"
	"strings"
)

// ScanRequest represents an uploaded slip
type ScanRequest struct {
	File  *multipart.FileHeader
	Debug bool
}

// Validate checks the upload is an image or a PDF
func (r *ScanRequest) Validate() error {
	if r.File == nil {
		return fmt.Errorf("file is required")
	}

	contentType := r.File.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("invalid file type")
	}
	if !IsSupportedContentType(contentType) {
		return fmt.Errorf("%w. Got: %s", ErrUnsupportedFile, contentType)
	}

	return nil
}

// IsSupportedContentType reports whether the scanner can read the given MIME type.
func IsSupportedContentType(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "application/pdf")
}

// ParseRequest carries detections produced by an external recognizer.
type ParseRequest struct {
	Detections []OCRDetection `json:"detections"`
}

// Validate rejects confidences outside [0,1]
func (r *ParseRequest) Validate() error {
	for i, d := range r.Detections {
		if math.IsNaN(d.Confidence) || d.Confidence < 0 || d.Confidence > 1 {
			return fmt.Errorf("detection %d: confidence %v outside [0,1]", i, d.Confidence)
		}
	}
	return nil
}

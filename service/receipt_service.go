package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/client"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/gabriel-vasile/mimetype"
)

const (
	SourcePDFText    = "pdf_text"
	SourceDetections = "detections"
)

type ReceiptService struct {
	engine       *thaislip.Engine
	pdfProcessor PDFProcessor
	images       *ImageProcessor
	recognizers  []client.Recognizer
	ocrTimeout   time.Duration
}

// NewReceiptService tries recognizers in the given order; the first one that
// returns text wins.
func NewReceiptService(
	engine *thaislip.Engine,
	pdfProcessor PDFProcessor,
	images *ImageProcessor,
	ocrTimeout time.Duration,
	recognizers ...client.Recognizer,
) *ReceiptService {
	return &ReceiptService{
		engine:       engine,
		pdfProcessor: pdfProcessor,
		images:       images,
		recognizers:  recognizers,
		ocrTimeout:   ocrTimeout,
	}
}

// OCRAvailable reports whether any recognizer is configured.
func (s *ReceiptService) OCRAvailable() bool {
	return len(s.recognizers) > 0
}

// Recognizers lists configured recognizer names in the order they are tried.
func (s *ReceiptService) Recognizers() []string {
	names := make([]string, len(s.recognizers))
	for i, r := range s.recognizers {
		names[i] = r.Name()
	}
	return names
}

// ScanFile reads an image or PDF slip from disk.
func (s *ReceiptService) ScanFile(ctx context.Context, path string) (*dto.ScanResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dto.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.ScanBytes(ctx, data)
}

// ScanBytes scans an image or PDF slip. A PDF with a text layer is parsed
// without OCR; scanned PDFs and images go through the recognizers. When no
// text is found the response is unsuccessful but err is nil.
func (s *ReceiptService) ScanBytes(ctx context.Context, data []byte) (*dto.ScanResponse, error) {
	if s.ocrTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.ocrTimeout)
		defer cancel()
	}

	mtype := mimetype.Detect(data)
	log.Printf("Scanning %d bytes detected as %s", len(data), mtype.String())

	var pages []image.Image
	switch {
	case mtype.Is("application/pdf"):
		detections, err := s.pdfProcessor.ExtractText(data)
		if err != nil {
			log.Printf("PDF text extraction failed: %v", err)
		}
		if len(detections) > 0 {
			log.Printf("Using PDF text layer (%d rows)", len(detections))
			return s.respond(detections, SourcePDFText, nil)
		}

		log.Println("PDF has no text layer, attempting image-based OCR")
		pages, err = s.pdfProcessor.ExtractImages(data)
		if err != nil {
			return nil, fmt.Errorf("failed to extract images from PDF: %w", err)
		}
		if len(pages) == 0 {
			return dto.NoTextResponse(), nil
		}
	default:
		img, err := s.images.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", dto.ErrUnsupportedFile, err)
		}
		pages = []image.Image{img}
	}

	var qr *dto.SlipQR
	var detections []dto.OCRDetection
	var source string
	for i, page := range pages {
		if qr == nil {
			if found, err := DecodeSlipQR(page); err == nil {
				qr = found
			}
		}

		pageDetections, name, err := s.recognize(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		detections = append(detections, pageDetections...)
		if source == "" {
			source = name
		}
	}

	return s.respond(detections, source, qr)
}

// ParseDetections parses detections from an external recognizer. An empty
// list is a valid slip with nothing found.
func (s *ReceiptService) ParseDetections(detections []dto.OCRDetection) (*dto.ScanResponse, error) {
	receipt, err := s.engine.Parse(detections)
	if err != nil {
		return nil, err
	}
	return BuildScanResponse(receipt, SourceDetections, nil), nil
}

func (s *ReceiptService) respond(detections []dto.OCRDetection, source string, qr *dto.SlipQR) (*dto.ScanResponse, error) {
	if len(detections) == 0 {
		resp := dto.NoTextResponse()
		resp.SlipQR = qr
		return resp, nil
	}

	receipt, err := s.engine.Parse(detections)
	if err != nil {
		return nil, err
	}
	log.Printf("Parsed slip: %d characters, bank=%s, type=%s", len(receipt.RawText), receipt.Bank, receipt.TransactionType.Code)
	return BuildScanResponse(receipt, source, qr), nil
}

// recognize runs the recognizer chain on one image. It returns no error when
// at least one recognizer ran, even if none found text.
func (s *ReceiptService) recognize(ctx context.Context, img image.Image) ([]dto.OCRDetection, string, error) {
	if !s.OCRAvailable() {
		return nil, "", dto.ErrOCRUnavailable
	}

	encoded, err := s.images.EncodePNG(s.images.Prepare(img))
	if err != nil {
		return nil, "", err
	}

	var lastErr error
	ran := false
	for _, r := range s.recognizers {
		log.Printf("Attempting %s extraction...", r.Name())
		detections, err := r.Recognize(ctx, encoded)
		if err != nil {
			log.Printf("%s failed: %v", r.Name(), err)
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		ran = true
		if len(detections) > 0 {
			return detections, r.Name(), nil
		}
		log.Printf("%s returned no text", r.Name())
	}

	if !ran && lastErr != nil {
		return nil, "", fmt.Errorf("all OCR engines failed: %w", lastErr)
	}
	return nil, "", nil
}

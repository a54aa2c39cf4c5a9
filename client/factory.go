package client

import (
	"log"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/config"
)

// FromConfig builds the recognizer chain: PaddleOCR first when an API URL is
// configured, Tesseract as the fallback.
func FromConfig(cfg *config.Config) []Recognizer {
	var recognizers []Recognizer
	if cfg.PaddleOCRURL != "" {
		recognizers = append(recognizers, NewPaddleClient(cfg.PaddleOCRURL, cfg.OCRTimeout))
	} else {
		log.Println("PADDLEOCR_API_URL not set, PaddleOCR disabled")
	}
	recognizers = append(recognizers, NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages))
	return recognizers
}

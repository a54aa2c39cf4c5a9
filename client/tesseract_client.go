package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/otiai10/gosseract/v2"
)

type TesseractClient struct {
	dataPath  string
	languages []string
}

// NewTesseractClient takes languages in Tesseract's "tha+eng" form.
func NewTesseractClient(dataPath, languages string) *TesseractClient {
	return &TesseractClient{
		dataPath:  dataPath,
		languages: strings.Split(languages, "+"),
	}
}

func (tc *TesseractClient) Name() string {
	return "tesseract"
}

type tesseractResult struct {
	detections []dto.OCRDetection
	err        error
}

// Recognize runs Tesseract on the image and returns one detection per word.
// gosseract cannot be interrupted, so a cancelled context returns early and
// the running call finishes in the background.
func (tc *TesseractClient) Recognize(ctx context.Context, img []byte) ([]dto.OCRDetection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan tesseractResult, 1)
	go func() {
		detections, err := tc.recognizeWords(img)
		done <- tesseractResult{detections: detections, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("tesseract OCR: %w", ctx.Err())
	case res := <-done:
		return res.detections, res.err
	}
}

func (tc *TesseractClient) recognizeWords(img []byte) ([]dto.OCRDetection, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}

	if err := client.SetLanguage(tc.languages...); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(img); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	detections := make([]dto.OCRDetection, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		detections = append(detections, dto.OCRDetection{
			Text:       word,
			Confidence: clampConfidence(box.Confidence / 100),
		})
	}

	log.Printf("Tesseract extracted %d words", len(detections))
	return detections, nil
}

package service

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/disintegration/imaging"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	// ExtractText returns one detection per text row of the PDF text layer.
	ExtractText(pdfData []byte) ([]dto.OCRDetection, error)
	// ExtractImages returns the embedded images of a scanned PDF slip.
	ExtractImages(pdfData []byte) ([]image.Image, error)
}

type pdfProcessor struct {
	tempDir string
}

func NewPDFProcessor(tempDir string) PDFProcessor {
	return &pdfProcessor{tempDir: tempDir}
}

// Text from the PDF text layer is exact, so rows carry full confidence.
const textLayerConfidence = 1.0

func (p *pdfProcessor) ExtractText(pdfData []byte) ([]dto.OCRDetection, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var detections []dto.OCRDetection
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			log.Printf("PDF page %d text extraction failed: %v", pageIndex, err)
			continue
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			text := strings.TrimSpace(line.String())
			if text == "" {
				continue
			}
			detections = append(detections, dto.OCRDetection{Text: text, Confidence: textLayerConfidence})
		}
	}
	return detections, nil
}

func (p *pdfProcessor) ExtractImages(pdfData []byte) ([]image.Image, error) {
	tempDir, err := os.MkdirTemp(p.tempDir, "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "slip.pdf")
	if err := os.WriteFile(pdfPath, pdfData, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}

	outDir := filepath.Join(tempDir, "images")
	if err := os.Mkdir(outDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}

	if err := api.ExtractImagesFile(pdfPath, outDir, nil, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	files, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read temp dir: %w", err)
	}

	var images []image.Image
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		img, err := imaging.Open(filepath.Join(outDir, file.Name()))
		if err != nil {
			log.Printf("Skipping PDF image %s: %v", file.Name(), err)
			continue
		}
		images = append(images, img)
	}

	return images, nil
}

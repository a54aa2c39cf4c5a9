package service

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Slips photographed or screenshotted smaller than this are upscaled before OCR.
const minOCRHeight = 1200

// ImageProcessor prepares slip images for OCR.
type ImageProcessor struct {
	enabled bool
}

func NewImageProcessor(enabled bool) *ImageProcessor {
	return &ImageProcessor{enabled: enabled}
}

// Decode reads any format imaging understands (PNG, JPEG, GIF, BMP, TIFF),
// applying EXIF orientation for phone photos.
func (p *ImageProcessor) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Prepare converts to grayscale, upscales small slips, lifts contrast and
// removes speckle before sharpening glyph edges. Disabled processors return
// img unchanged.
func (p *ImageProcessor) Prepare(img image.Image) image.Image {
	if !p.enabled {
		return img
	}

	gray := imaging.Grayscale(img)
	if gray.Bounds().Dy() < minOCRHeight {
		gray = imaging.Resize(gray, 0, minOCRHeight, imaging.Lanczos)
	}
	gray = imaging.AdjustContrast(gray, 20)
	gray = imaging.Blur(gray, 0.5)
	return imaging.Sharpen(gray, 1.0)
}

// EncodePNG is the wire format handed to recognizers.
func (p *ImageProcessor) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

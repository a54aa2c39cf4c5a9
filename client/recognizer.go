package client

import (
	"context"
	"math"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
)

// Recognizer turns an encoded image into text detections in reading order.
type Recognizer interface {
	Name() string
	Recognize(ctx context.Context, img []byte) ([]dto.OCRDetection, error)
}

// clampConfidence maps engine scores into [0,1].
func clampConfidence(c float64) float64 {
	switch {
	case math.IsNaN(c), c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}

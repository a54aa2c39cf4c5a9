package thaislip

import (
	"strings"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
)

// Aggregate joins detection texts with single spaces, in detection order, and
// averages their confidences. No detections yields an empty text and 0.
func Aggregate(detections []dto.OCRDetection) AggregatedText {
	if len(detections) == 0 {
		return AggregatedText{}
	}

	texts := make([]string, len(detections))
	var total float64
	for i, d := range detections {
		texts[i] = d.Text
		total += d.Confidence
	}

	return AggregatedText{
		Text:              strings.Join(texts, " "),
		AverageConfidence: total / float64(len(detections)),
	}
}

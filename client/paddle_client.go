package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
)

// PaddleClient calls a PaddleOCR hub serving endpoint
// (POST {"images": [base64]} → {"results": [[{"text", "confidence"}]]}).
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewPaddleClient(apiURL string, timeout time.Duration) *PaddleClient {
	log.Printf("PaddleOCR API configured at %s", apiURL)
	return &PaddleClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *PaddleClient) Name() string {
	return "paddleocr"
}

type paddleRequest struct {
	Images []string `json:"images"`
}

type paddleResponse struct {
	Results [][]struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"results"`
}

// Recognize sends the image to the PaddleOCR API and returns one detection
// per recognised line, in the order the API reports them.
func (p *PaddleClient) Recognize(ctx context.Context, img []byte) ([]dto.OCRDetection, error) {
	payloadBytes, err := json.Marshal(paddleRequest{
		Images: []string{base64.StdEncoding.EncodeToString(img)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to build PaddleOCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var detections []dto.OCRDetection
	if len(result.Results) > 0 {
		for _, line := range result.Results[0] {
			text := strings.TrimSpace(line.Text)
			if text == "" {
				continue
			}
			detections = append(detections, dto.OCRDetection{
				Text:       text,
				Confidence: clampConfidence(line.Confidence),
			})
		}
	}

	log.Printf("PaddleOCR HTTP API extracted %d lines", len(detections))
	return detections, nil
}

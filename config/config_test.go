package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "TESSDATA_PREFIX", "OCR_LANGUAGES", "PADDLEOCR_API_URL", "OCR_TIMEOUT",
		"MAX_FILE_SIZE", "TEMP_DIR", "PREPROCESS_IMAGES", "SLIP_CORRECTED_TOTAL", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "tha+eng", cfg.OCRLanguages)
	assert.Empty(t, cfg.PaddleOCRURL)
	assert.Equal(t, 60*time.Second, cfg.OCRTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "./temp", cfg.TempDir)
	assert.True(t, cfg.PreprocessImages)
	assert.False(t, cfg.CorrectedTotal)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PADDLEOCR_API_URL", "http://paddleocr:8866/predict/ocr_system")
	t.Setenv("OCR_TIMEOUT", "5s")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("PREPROCESS_IMAGES", "false")
	t.Setenv("SLIP_CORRECTED_TOTAL", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "http://paddleocr:8866/predict/ocr_system", cfg.PaddleOCRURL)
	assert.Equal(t, 5*time.Second, cfg.OCRTimeout)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.False(t, cfg.PreprocessImages)
	assert.True(t, cfg.CorrectedTotal)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
}

func TestLoadConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("OCR_TIMEOUT", "soon")
	t.Setenv("MAX_FILE_SIZE", "-1")
	t.Setenv("PREPROCESS_IMAGES", "maybe")

	cfg := LoadConfig()
	assert.Equal(t, 60*time.Second, cfg.OCRTimeout)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.True(t, cfg.PreprocessImages)
}

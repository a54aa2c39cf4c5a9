package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      string
	PaddleOCRURL      string
	OCRTimeout        time.Duration
	MaxFileSize       int64
	TempDir           string
	PreprocessImages  bool
	CorrectedTotal    bool
	AllowOrigins      []string
}

// LoadConfig reads the environment, after loading a .env file when one exists.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8000"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/"),
		OCRLanguages:      getEnv("OCR_LANGUAGES", "tha+eng"),
		PaddleOCRURL:      os.Getenv("PADDLEOCR_API_URL"),
		OCRTimeout:        getDuration("OCR_TIMEOUT", 60*time.Second),
		MaxFileSize:       getInt64("MAX_FILE_SIZE", 10*1024*1024), // 10 MB
		TempDir:           getEnv("TEMP_DIR", "./temp"),
		PreprocessImages:  getBool("PREPROCESS_IMAGES", true),
		CorrectedTotal:    getBool("SLIP_CORRECTED_TOTAL", false),
		AllowOrigins:      splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

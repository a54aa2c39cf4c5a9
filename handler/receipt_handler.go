package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/service"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	tempDir        string
	maxFileSize    int64
}

func NewReceiptHandler(receiptService *service.ReceiptService, tempDir string, maxFileSize int64) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		tempDir:        tempDir,
		maxFileSize:    maxFileSize,
	}
}

// Register mounts every receipt endpoint on r.
func (h *ReceiptHandler) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/test", h.Test)
	r.POST("/scan-receipt", h.ScanReceipt)
	r.POST("/scan-receipt-debug", h.ScanReceiptDebug)

	api := r.Group("/api/v1")
	{
		receipts := api.Group("/receipts")
		{
			receipts.POST("/scan", h.ScanReceipt)
			receipts.POST("/parse", h.ParseReceipt)
		}
	}
}

// Root handles GET /
func (h *ReceiptHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Thai Bank Receipt OCR API",
		"status":        "running",
		"ocr_available": h.receiptService.OCRAvailable(),
		"recognizers":   h.receiptService.Recognizers(),
		"endpoints": gin.H{
			"health":     "/health",
			"scan":       "/scan-receipt",
			"debug_scan": "/scan-receipt-debug",
			"parse":      "/api/v1/receipts/parse",
			"test":       "/test",
		},
	})
}

// Health handles GET /health
func (h *ReceiptHandler) Health(c *gin.Context) {
	_, err := os.Stat(h.tempDir)
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"ocr_loaded":      h.receiptService.OCRAvailable(),
		"temp_dir":        h.tempDir,
		"temp_dir_exists": err == nil,
	})
}

// Test handles GET /test
func (h *ReceiptHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "API is working!",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ScanReceipt handles POST /scan-receipt
func (h *ReceiptHandler) ScanReceipt(c *gin.Context) {
	h.scan(c, false)
}

// ScanReceiptDebug handles POST /scan-receipt-debug and keeps the upload on disk.
func (h *ReceiptHandler) ScanReceiptDebug(c *gin.Context) {
	h.scan(c, true)
}

func (h *ReceiptHandler) scan(c *gin.Context, debug bool) {
	requestID := uuid.New().String()[:8]
	log.Printf("[%s] Received receipt scan request (debug=%t)", requestID, debug)

	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "File is required", err)
		return
	}

	request := &dto.ScanRequest{File: file, Debug: debug}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if file.Size > h.maxFileSize {
		h.sendError(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds %d bytes", h.maxFileSize), nil)
		return
	}

	tempPath := filepath.Join(h.tempDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to save uploaded file", err)
		return
	}
	if !debug {
		defer os.Remove(tempPath)
	}

	log.Printf("[%s] Processing %s (%d bytes)", requestID, file.Filename, file.Size)

	response, err := h.receiptService.ScanFile(c.Request.Context(), tempPath)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to scan receipt", err)
		return
	}

	response.RequestID = requestID
	if debug {
		response.SavedImage = tempPath
		response.Note = "Check the saved file to see what the OCR processed"
	}

	log.Printf("[%s] Receipt scan completed (success=%t)", requestID, response.Success)
	c.JSON(http.StatusOK, response)
}

// ParseReceipt handles POST /api/v1/receipts/parse for detections produced elsewhere.
func (h *ReceiptHandler) ParseReceipt(c *gin.Context) {
	var request dto.ParseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response, err := h.receiptService.ParseDetections(request.Detections)
	if err != nil {
		h.sendError(c, statusFor(err), "Failed to parse receipt", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrInputNotFound):
		return http.StatusNotFound
	case errors.Is(err, dto.ErrUnsupportedFile), errors.Is(err, thaislip.ErrMalformedDetections):
		return http.StatusBadRequest
	case errors.Is(err, dto.ErrOCRUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "SCAN_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

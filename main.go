package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/client"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/config"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/handler"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/service"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	log.Println("TESSDATA_PREFIX set to:", cfg.TesseractDataPath)

	if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
		log.Fatalf("Failed to create temp dir %s: %v", cfg.TempDir, err)
	}

	// The parsing engine is immutable and shared by every request
	engine := thaislip.New(thaislip.WithCorrectedTotal(cfg.CorrectedTotal))

	receiptService := service.NewReceiptService(
		engine,
		service.NewPDFProcessor(cfg.TempDir),
		service.NewImageProcessor(cfg.PreprocessImages),
		cfg.OCRTimeout,
		client.FromConfig(cfg)...,
	)
	receiptHandler := handler.NewReceiptHandler(receiptService, cfg.TempDir, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 || cfg.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	router.Use(cors.New(corsConfig))

	receiptHandler.Register(router)

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Starting Thai receipt OCR service on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

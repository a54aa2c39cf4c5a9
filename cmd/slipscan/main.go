// Command slipscan scans Thai bank slips from the command line and prints the
// parsed fields as JSON.
//
//	slipscan slip.png statement.pdf
//	slipscan --text ocr-output.txt
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/client"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/config"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/dto"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/service"
	"github.com/MaioakMaioakMaioakMaioak/ExpenseTracker/utils/thaislip"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.LoadConfig()

	fs := ff.NewFlagSet("slipscan")
	var (
		textMode       = fs.BoolLong("text", "Treat arguments as files of already recognised text")
		correctedTotal = fs.BoolLong("corrected-total", "Report amount + fee as total even when the fee is zero")
		paddleURL      = fs.StringLong("paddle-url", cfg.PaddleOCRURL, "PaddleOCR API URL (empty disables PaddleOCR)")
		tessdata       = fs.StringLong("tessdata", cfg.TesseractDataPath, "Tesseract tessdata directory")
		languages      = fs.StringLong("languages", cfg.OCRLanguages, "Tesseract languages")
		timeout        = fs.DurationLong("timeout", cfg.OCRTimeout, "OCR timeout per file")
		noPreprocess   = fs.BoolLong("no-preprocess", "Send images to OCR without preprocessing")
		verbose        = fs.BoolLong("verbose", "Log progress to stderr")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("SLIPSCAN")); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	paths := fs.GetArgs()
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: at least one file is required")
		return 2
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg.PaddleOCRURL = *paddleURL
	cfg.TesseractDataPath = *tessdata
	cfg.OCRLanguages = *languages
	cfg.OCRTimeout = *timeout

	engine := thaislip.New(thaislip.WithCorrectedTotal(*correctedTotal || cfg.CorrectedTotal))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var scan func(path string) (*dto.ScanResponse, error)
	if *textMode {
		scan = func(path string) (*dto.ScanResponse, error) {
			return parseTextFile(engine, path)
		}
	} else {
		svc := service.NewReceiptService(
			engine,
			service.NewPDFProcessor(""),
			service.NewImageProcessor(!*noPreprocess && cfg.PreprocessImages),
			cfg.OCRTimeout,
			client.FromConfig(cfg)...,
		)
		scan = func(path string) (*dto.ScanResponse, error) {
			return svc.ScanFile(ctx, path)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	status := 0
	for _, path := range paths {
		resp, err := scan(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
			continue
		}
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			status = 1
		}
	}
	return status
}

// parseTextFile parses text another OCR tool already produced; the whole
// file is one detection with full confidence.
func parseTextFile(engine *thaislip.Engine, path string) (*dto.ScanResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", dto.ErrInputNotFound, path)
		}
		return nil, err
	}

	receipt, err := engine.Parse([]dto.OCRDetection{{Text: string(data), Confidence: 1}})
	if err != nil {
		return nil, err
	}
	return service.BuildScanResponse(receipt, "text", nil), nil
}

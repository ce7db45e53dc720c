package main

import (
	"fmt"
	"log"

	"polex/internal/config"
	"polex/internal/handler"
	"polex/internal/provider"
	"polex/internal/router"
	"polex/internal/service"

	_ "polex/docs"
	_ "polex/internal/provider/mistral"
	_ "polex/internal/provider/openai"
)

// @title Policy Extraction API
// @version 1.0
// @description Extracts structured fields from insurance policy documents via OCR and LLM field extraction.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize providers
	ocrClient, err := provider.NewOCR(&cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to initialize OCR provider: %w", err)
	}
	extractor, err := provider.NewExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extraction provider: %w", err)
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(ocrClient, extractor, &cfg.OCR, &cfg.Extractor, &cfg.Upload)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc)
	healthH := handler.NewHealthHandler(&cfg.OCR, &cfg.Extractor)

	// Setup router
	r := router.Setup(cfg, extractH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

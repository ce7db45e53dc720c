package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"polex/internal/config"
	"polex/internal/domain"
	"polex/internal/policy"
	"polex/internal/port"
	"polex/internal/provider"
)

// ExtractionInput is the DTO for document extraction requests.
type ExtractionInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ExtractionService defines the policy extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractionInput) (*domain.PolicyExtraction, error)
	ExtractFromText(ctx context.Context, text string) (*domain.PolicyExtraction, error)
}

type extractionService struct {
	ocr       port.DocumentOCR
	extractor port.FieldExtractor
	ocrCfg    *config.OCRConfig
	extCfg    *config.ExtractorConfig
	uploadCfg *config.UploadConfig
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	ocr port.DocumentOCR,
	extractor port.FieldExtractor,
	ocrCfg *config.OCRConfig,
	extCfg *config.ExtractorConfig,
	uploadCfg *config.UploadConfig,
) ExtractionService {
	return &extractionService{
		ocr:       ocr,
		extractor: extractor,
		ocrCfg:    ocrCfg,
		extCfg:    extCfg,
		uploadCfg: uploadCfg,
	}
}

// Extract validates the uploaded document, runs it through OCR, and extracts
// policy fields from the recognized text. All validation happens before any
// provider is contacted, and each provider is called exactly once.
func (s *extractionService) Extract(ctx context.Context, input ExtractionInput) (*domain.PolicyExtraction, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.uploadCfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	fileBytes, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(fileBytes) == 0 {
		return nil, domain.ErrEmptyFile
	}

	// Magic-byte check for formats the sniffer can identify. The claimed
	// extension must agree with the actual content.
	if expected, sniffable := domain.SniffedContentTypes[fileType]; sniffable {
		if detected := http.DetectContentType(fileBytes); detected != expected {
			return nil, domain.ErrContentTypeMismatch
		}
	}

	if fileType == domain.FileTypePDF {
		pageCount, err := api.PageCount(bytes.NewReader(fileBytes), nil)
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable pdf: %v", domain.ErrUnsupportedFileType, err)
		}
		if pageCount > s.uploadCfg.MaxPages {
			return nil, domain.ErrTooManyPages
		}
	}

	if s.ocrCfg.APIKey == "" {
		return nil, domain.ErrOCRNotConfigured
	}
	if s.extCfg.APIKey == "" {
		return nil, domain.ErrExtractorNotConfigured
	}

	contentType := domain.AllowedFileTypes[fileType]
	log.Printf("extractionService.Extract: processing %s (%s, %d bytes)",
		input.Header.Filename, contentType, input.Header.Size)

	ocrOut, err := s.ocr.Parse(ctx, port.OCRInput{
		FileBytes:   fileBytes,
		ContentType: contentType,
		FileName:    input.Header.Filename,
	})
	if err != nil {
		log.Printf("extractionService.Extract: ocr failed for %s: %v", input.Header.Filename, err)
		return nil, wrapProviderErr(err, domain.ErrOCRFailed)
	}

	if strings.TrimSpace(ocrOut.Text) == "" {
		return nil, domain.ErrNoTextContent
	}

	return s.extractFields(ctx, ocrOut.Text)
}

// ExtractFromText extracts policy fields from text the caller already has,
// skipping the OCR stage.
func (s *extractionService) ExtractFromText(ctx context.Context, text string) (*domain.PolicyExtraction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	if s.extCfg.APIKey == "" {
		return nil, domain.ErrExtractorNotConfigured
	}
	return s.extractFields(ctx, text)
}

func (s *extractionService) extractFields(ctx context.Context, text string) (*domain.PolicyExtraction, error) {
	out, err := s.extractor.Extract(ctx, port.ExtractInput{DocumentText: text})
	if err != nil {
		log.Printf("extractionService.extractFields: extraction failed: %v", err)
		return nil, wrapProviderErr(err, domain.ErrExtractionFailed)
	}

	extraction, err := policy.Normalize(out.Fields, text, s.extCfg.RegulatoryInference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedExtraction, err)
	}

	encoded, err := json.Marshal(extraction)
	if err != nil {
		return nil, fmt.Errorf("encoding extraction: %w", err)
	}
	if err := provider.ValidateExtraction(encoded); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedExtraction, err)
	}

	return extraction, nil
}

// wrapProviderErr classifies a provider failure: rate limits surface as
// domain.ErrProviderRateLimited with the original error kept in the chain
// for the Retry-After header, everything else wraps the stage sentinel.
func wrapProviderErr(err error, sentinel error) error {
	var rle *provider.RateLimitError
	if errors.As(err, &rle) {
		return fmt.Errorf("%w: %w", domain.ErrProviderRateLimited, err)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}

package provider

import (
	"fmt"

	"polex/internal/config"
	"polex/internal/port"
)

// OCRFactory is a function that creates a DocumentOCR from an OCR config.
type OCRFactory func(cfg *config.OCRConfig) (port.DocumentOCR, error)

// ExtractorFactory is a function that creates a FieldExtractor from an extractor config.
type ExtractorFactory func(cfg *config.ExtractorConfig) (port.FieldExtractor, error)

// registries of provider factories, populated by init() in each provider
// package or explicitly via RegisterOCR/RegisterExtractor.
var (
	ocrProviders       = map[string]OCRFactory{}
	extractorProviders = map[string]ExtractorFactory{}
)

// RegisterOCR registers an OCR provider factory by name.
func RegisterOCR(name string, factory OCRFactory) {
	ocrProviders[name] = factory
}

// RegisterExtractor registers an extraction provider factory by name.
func RegisterExtractor(name string, factory ExtractorFactory) {
	extractorProviders[name] = factory
}

// NewOCR creates a DocumentOCR from an OCR config using the registered factory.
func NewOCR(cfg *config.OCRConfig) (port.DocumentOCR, error) {
	factory, ok := ocrProviders[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown ocr provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewExtractor creates a FieldExtractor from an extractor config using the registered factory.
func NewExtractor(cfg *config.ExtractorConfig) (port.FieldExtractor, error) {
	factory, ok := extractorProviders[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

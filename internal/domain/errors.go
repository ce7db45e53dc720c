package domain

import "errors"

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrUnsupportedFileType    = errors.New("unsupported file type")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrTooManyPages           = errors.New("document exceeds maximum page count")
	ErrEmptyFile              = errors.New("uploaded file is empty")
	ErrEmptyText              = errors.New("document text is empty")
	ErrContentTypeMismatch    = errors.New("file content does not match its extension")
	ErrOCRNotConfigured       = errors.New("ocr provider is not configured")
	ErrExtractorNotConfigured = errors.New("extraction provider is not configured")
	ErrOCRFailed              = errors.New("ocr provider request failed")
	ErrExtractionFailed       = errors.New("extraction provider request failed")
	ErrNoTextContent          = errors.New("no text content found in ocr response")
	ErrMalformedExtraction    = errors.New("extraction response does not match the expected format")
	ErrProviderRateLimited    = errors.New("provider rate limited")
)

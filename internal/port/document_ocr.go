package port

import "context"

// OCRInput carries an uploaded document to the OCR provider.
type OCRInput struct {
	FileBytes   []byte
	ContentType string
	FileName    string
}

// OCROutput contains the normalized text produced by the OCR provider.
type OCROutput struct {
	// Text is the markdown of all pages joined with blank lines.
	Text      string
	PageCount int
	ModelUsed string
}

// DocumentOCR abstracts the OCR/document-parsing provider.
type DocumentOCR interface {
	Parse(ctx context.Context, input OCRInput) (*OCROutput, error)
}

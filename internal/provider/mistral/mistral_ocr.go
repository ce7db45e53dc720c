package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"polex/internal/config"
	"polex/internal/port"
	"polex/internal/provider"
)

const (
	defaultBaseURL = "https://api.mistral.ai/v1"
	defaultModel   = "mistral-ocr-latest"
)

func init() {
	provider.RegisterOCR("mistral", func(cfg *config.OCRConfig) (port.DocumentOCR, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.DocumentOCR using the Mistral OCR API.
type Client struct {
	apiKey        string
	baseURL       string
	model         string
	includeImages bool
	client        *http.Client
}

// NewClient creates a Mistral OCR client from a provider config.
func NewClient(cfg *config.OCRConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(baseURL, "/"),
		model:         model,
		includeImages: cfg.IncludeImages,
		client:        &http.Client{Timeout: timeout},
	}
}

// Parse runs the document through Mistral OCR and returns the combined
// markdown text of all pages.
func (c *Client) Parse(ctx context.Context, input port.OCRInput) (*port.OCROutput, error) {
	reqBody := ocrRequest{
		Model:              c.model,
		Document:           buildDocument(input),
		IncludeImageBase64: c.includeImages,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling mistral API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("mistral API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := provider.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, provider.NewRateLimitError("mistral", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return parseResponse(respBody)
}

// buildDocument wraps the file bytes in the document reference Mistral
// expects: image uploads go through image_url, everything else through
// document_url, both as base64 data URLs.
func buildDocument(input port.OCRInput) ocrDocument {
	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)
	dataURL := fmt.Sprintf("data:%s;base64,%s", input.ContentType, encoded)

	switch input.ContentType {
	case "image/png", "image/jpeg":
		return ocrDocument{
			Type:     "image_url",
			ImageURL: &ocrImageURL{URL: dataURL},
		}
	default:
		return ocrDocument{
			Type:        "document_url",
			DocumentURL: dataURL,
		}
	}
}

func parseResponse(body []byte) (*port.OCROutput, error) {
	var resp ocrResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Pages) == 0 {
		return nil, fmt.Errorf("empty response from API: no pages")
	}

	parts := make([]string, 0, len(resp.Pages))
	for _, page := range resp.Pages {
		parts = append(parts, page.Markdown)
	}

	pageCount := len(resp.Pages)
	if resp.UsageInfo != nil && resp.UsageInfo.PagesProcessed > 0 {
		pageCount = resp.UsageInfo.PagesProcessed
	}

	return &port.OCROutput{
		Text:      strings.Join(parts, "\n\n"),
		PageCount: pageCount,
		ModelUsed: resp.Model,
	}, nil
}

// Mistral OCR API types.

type ocrRequest struct {
	Model              string      `json:"model"`
	Document           ocrDocument `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64,omitempty"`
}

type ocrDocument struct {
	Type        string       `json:"type"`
	ImageURL    *ocrImageURL `json:"image_url,omitempty"`
	DocumentURL string       `json:"document_url,omitempty"`
}

type ocrImageURL struct {
	URL string `json:"url"`
}

type ocrResponse struct {
	Model     string     `json:"model"`
	Pages     []ocrPage  `json:"pages"`
	UsageInfo *usageInfo `json:"usage_info,omitempty"`
}

type ocrPage struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
}

type usageInfo struct {
	PagesProcessed int `json:"pages_processed"`
	DocSizeBytes   int `json:"doc_size_bytes,omitempty"`
}

var _ port.DocumentOCR = (*Client)(nil)

package pitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is where a locally running analysis service listens
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout for API requests (long recordings take time to analyze)
	DefaultTimeout = 5 * time.Minute

	// MaxFileSize is the maximum upload size accepted by the client (500MB)
	MaxFileSize = 500 * 1024 * 1024
)

// Client is the pitch-perfect analysis service client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for testing or remote deployments)
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger for request debugging
func WithLogger(log *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new analysis service client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AnalyzeAudio uploads an audio or video file for speech analysis.
func (c *Client) AnalyzeAudio(ctx context.Context, filePath string) (*AudioAnalysis, error) {
	var result AudioAnalysis
	err := c.postMultipart(ctx, "/analyze", filePath, nil,
		"Audio analysis failed. Please try again.", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AnalyzePDF uploads a slide-deck PDF for analysis.
func (c *Client) AnalyzePDF(ctx context.Context, filePath string) (*PDFAnalysis, error) {
	var result PDFAnalysis
	err := c.postMultipart(ctx, "/analyze-pdf", filePath, nil,
		"Slide analysis failed. Please try again.", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateImprovedPitch requests a rewritten pitch script plus synthesized
// narration, given the original recording, its transcript and the insights
// from a prior audio analysis.
func (c *Client) GenerateImprovedPitch(ctx context.Context, filePath, transcript string, insights Insights) (*ImprovedPitch, error) {
	insightsJSON, err := json.Marshal(insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode insights: %w", err)
	}

	fields := map[string]string{
		"transcript":    transcript,
		"insights_json": string(insightsJSON),
	}

	var result ImprovedPitch
	err = c.postMultipart(ctx, "/generate-improved-pitch", filePath, fields,
		"Could not generate an improved pitch. Please try again.", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks whether the analysis service is reachable. Any HTTP response,
// including an error status, counts as reachable; only transport failures
// are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("analysis service unreachable at %s: %w", c.baseURL, err)
	}
	resp.Body.Close()
	return nil
}

// postMultipart uploads filePath under the form field "file" along with any
// extra fields, decodes a 2xx JSON body into out, and turns non-2xx bodies
// into an *APIError carrying the service's detail/error message when one is
// present, falling back to the endpoint's generic message.
func (c *Client) postMultipart(ctx context.Context, endpoint, filePath string, fields map[string]string, fallbackMsg string, out any) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to access file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("file size %d exceeds maximum %d bytes", info.Size(), MaxFileSize)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file to form: %w", err)
	}

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Debugw("uploading", "url", url, "file", filepath.Base(filePath), "size", info.Size())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugw("response", "url", url, "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(respBody, fallbackMsg),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// extractErrorMessage pulls the user-facing message out of an error body.
// The service reports failures as {"detail": "..."} or {"error": "..."}.
func extractErrorMessage(body []byte, fallback string) string {
	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Err != "" {
			return payload.Err
		}
	}
	return fallback
}

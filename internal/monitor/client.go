// Package monitor is the HTTP client for the finance monitor backend API,
// which owns storage and the performance analysis itself. The client does a
// single round trip per call: no retries, no caching.
package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/voldemort-x/Finance-Monitor/internal/core"
)

const (
	pathTransactions   = "/transactions"
	pathAddTransaction = "/add_transaction"
	pathSummary        = "/performance_analysis"
	pathDetailed       = "/detailed_analysis"
)

// APIError is a response with a non-2xx status. Body carries the raw
// response text; Message, when set, is the server-provided error string
// meant for the user.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// Client calls the finance monitor backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL. The timeout
// bounds each individual request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListTransactions fetches all transactions in server order.
func (c *Client) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	var recs []transactionRecord
	if err := c.getJSON(ctx, pathTransactions, &recs); err != nil {
		return nil, err
	}
	out := make([]core.Transaction, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// ReadSummary fetches the aggregate performance report.
func (c *Client) ReadSummary(ctx context.Context) (core.SummaryReport, error) {
	var rec summaryRecord
	if err := c.getJSON(ctx, pathSummary, &rec); err != nil {
		return core.SummaryReport{}, err
	}
	return rec.toDomain(), nil
}

// ReadDetailedReport fetches the long-form analysis.
func (c *Client) ReadDetailedReport(ctx context.Context) (core.DetailedReport, error) {
	var rec detailedRecord
	if err := c.getJSON(ctx, pathDetailed, &rec); err != nil {
		return core.DetailedReport{}, err
	}
	return core.DetailedReport{Text: rec.DetailedReport}, nil
}

// AddTransaction posts a new transaction and returns the id the backend
// assigned. The response body is decoded regardless of status so a
// server-provided error message reaches the user.
func (c *Client) AddTransaction(ctx context.Context, tx core.Transaction) (int64, error) {
	payload, err := json.Marshal(fromDomain(tx))
	if err != nil {
		return 0, fmt.Errorf("encode transaction: %w", err)
	}

	url := c.baseURL + pathAddTransaction
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", pathAddTransaction, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read %s response: %w", pathAddTransaction, err)
	}

	var result addResult
	decodeErr := json.Unmarshal(body, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		if decodeErr == nil && result.Error != "" {
			apiErr.Message = result.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		slog.WarnContext(ctx, "Add transaction rejected",
			"status_code", resp.StatusCode, "message", apiErr.Message)
		return 0, apiErr
	}
	if decodeErr != nil {
		return 0, fmt.Errorf("decode %s response: %w", pathAddTransaction, decodeErr)
	}

	slog.InfoContext(ctx, "Transaction added", "id", result.ID,
		"type", string(tx.Type), "amount_cents", tx.Amount.Cents)
	return result.ID, nil
}

// getJSON issues a GET and decodes a JSON body into v. Non-2xx responses
// become an *APIError carrying the status code and the body text.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

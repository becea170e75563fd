// Package backend is the REST client for the external customer/transaction
// API. All persistence lives behind this surface; the client does no retry
// and no caching.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kundendash-dev/kundendash/internal/model"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 30 * time.Second

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for a base URL like "http://host:8080/api".
// A nil logger disables logging.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// CaseTypes returns the case-type categories of the dashboard.
func (c *Client) CaseTypes(ctx context.Context) ([]model.CaseType, error) {
	var out []model.CaseType
	if err := c.do(ctx, http.MethodGet, "/customer-case-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Customers returns the customers of one case-type category.
func (c *Client) Customers(ctx context.Context, typ string) ([]model.Customer, error) {
	path := "/kunden?typ=" + url.QueryEscape(typ)
	var out []model.Customer
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomerCases returns the case pairings available for one customer.
func (c *Client) CustomerCases(ctx context.Context, kundeID int64) ([]model.CustomerCase, error) {
	path := fmt.Sprintf("/kunden/%d/customerCaseTypes", kundeID)
	var out []model.CustomerCase
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions returns the full ledger of a customer/case pairing.
func (c *Client) Transactions(ctx context.Context, caseID string) ([]model.Transaction, error) {
	path := "/kundenTransactions/" + url.PathEscape(caseID)
	var out []model.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTransaction persists a new booking; the response carries the
// backend-assigned id and authoritative saldo.
func (c *Client) CreateTransaction(ctx context.Context, caseID string, tx model.Transaction) (model.Transaction, error) {
	path := "/kundenTransactions/" + url.PathEscape(caseID)
	var out model.Transaction
	if err := c.do(ctx, http.MethodPost, path, tx, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// UpdateTransaction replaces the editable fields of an existing booking.
func (c *Client) UpdateTransaction(ctx context.Context, caseID, transactionID string, tx model.Transaction) (model.Transaction, error) {
	path := "/kundenTransactions/" + url.PathEscape(caseID) + "/" + url.PathEscape(transactionID)
	var out model.Transaction
	if err := c.do(ctx, http.MethodPut, path, tx, &out); err != nil {
		return model.Transaction{}, err
	}
	return out, nil
}

// DeleteTransaction removes a booking.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID string) error {
	path := "/kundenTransactions/" + url.PathEscape(transactionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// StatementRows returns the finalized row set for a statement export, scoped
// to a customer/case pairing and an as-of date.
func (c *Client) StatementRows(ctx context.Context, caseID, datum string) ([]model.Transaction, error) {
	path := "/getPdfData/" + url.PathEscape(caseID) + "/" + url.PathEscape(datum)
	var out []model.Transaction
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Error("backend returned error status",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	c.logger.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return nil
}

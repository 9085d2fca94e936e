package kkiapay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses reported by the KkiaPay API.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
	StatusPending = "PENDING"
)

// Transaction is the verification result for one gateway transaction.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
}

func (t *Transaction) IsSuccessful() bool {
	return t.Status == StatusSuccess
}

// Client calls the KkiaPay REST API to verify transactions reported by
// the browser-side widget before they are trusted.
type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// VerifyTransaction asks the gateway for the authoritative status of a
// transaction id received on the callback route.
func (c *Client) VerifyTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	body, err := json.Marshal(map[string]string{"transactionId": transactionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.config.BaseURL() + "/api/v1/transactions/status"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.config.PrivateKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call KkiaPay API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("KkiaPay API error: status %d: %s", resp.StatusCode, respBody)
	}

	tx := &Transaction{}
	if err := json.Unmarshal(respBody, tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if tx.TransactionID == "" {
		tx.TransactionID = transactionID
	}

	return tx, nil
}

// Package walletexplorer resolves address hashes to wallet labels against a
// walletexplorer-style JSON API. Lookups are best effort: the upstream is a
// public, unreliable service.
package walletexplorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/entitylens7000-backend/internal/clock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotFound means the explorer has no wallet note for the address.
	ErrNotFound = errors.New("wallet label not found")
	// ErrInvalidAddress means the hash failed address validation and the
	// lookup was skipped without spending a request.
	ErrInvalidAddress = errors.New("invalid address hash")
)

const (
	defaultTimeout = 30 * time.Second
	retryDelay     = 5 * time.Second
	maxBodySize    = 1 << 20
)

type (
	// Metrics records metrics for explorer lookups.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client is a rate-limited wallet label lookup client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	params     *chaincfg.Params
	rl         ratelimit.Limiter
	sleep      func(context.Context, time.Duration) error
	metrics    Metrics
	logger     *zap.Logger
}

// NewClient constructs a Client against baseURL, pacing requests at rps.
func NewClient(baseURL string, rps int, params *chaincfg.Params, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if rps <= 0 {
		return nil, errors.New("rps must be positive")
	}
	if params == nil {
		return nil, errors.New("chain params are required")
	}
	if metrics == nil {
		return nil, errors.New("explorer metrics is required")
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		params:     params,
		rl:         ratelimit.New(rps),
		sleep:      clock.SleepWithContext,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

type addressResponse struct {
	Found    bool   `json:"found"`
	Label    string `json:"label"`
	WalletID string `json:"wallet_id"`
}

// WalletLabel returns the wallet label the explorer associates with the
// address hash. Transient upstream failures are retried once.
func (c *Client) WalletLabel(ctx context.Context, address string) (label string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("wallet_label", err, started)
	}()

	if _, derr := btcutil.DecodeAddress(address, c.params); derr != nil {
		return "", fmt.Errorf("address %q: %w", address, ErrInvalidAddress)
	}

	label, err = c.lookup(ctx, address)
	if err == nil || !isTransient(err) {
		return label, err
	}

	c.logger.Warn("explorer lookup failed, retrying once",
		zap.String("address", address),
		zap.Error(err),
	)
	if serr := c.sleep(ctx, retryDelay); serr != nil {
		return "", serr
	}
	return c.lookup(ctx, address)
}

// transientError marks upstream statuses worth one retry.
type transientError struct {
	status int
}

func (e *transientError) Error() string {
	return fmt.Sprintf("explorer returned status %d", e.status)
}

func isTransient(err error) bool {
	var terr *transientError
	return errors.As(err, &terr)
}

func (c *Client) lookup(ctx context.Context, address string) (string, error) {
	c.rl.Take()

	lookupURL := fmt.Sprintf("%s/api/1/address?address=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("build lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup address: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("address %q: %w", address, ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", &transientError{status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("explorer returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read lookup response: %w", err)
	}

	var parsed addressResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode lookup response: %w", err)
	}
	if !parsed.Found {
		return "", fmt.Errorf("address %q: %w", address, ErrNotFound)
	}
	if parsed.Label != "" {
		return parsed.Label, nil
	}
	if parsed.WalletID != "" {
		return parsed.WalletID, nil
	}
	return "", fmt.Errorf("address %q: %w", address, ErrNotFound)
}

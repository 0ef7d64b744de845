package buda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"spread-alerts/internal/spread"
)

// ClientOptions parameterise the Buda exchange client.
type ClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the Buda public market-data API.
type Client struct {
	opts    ClientOptions
	logger  zerolog.Logger
	client  *http.Client
	baseURL string
}

// NewClient constructs a Buda API client.
func NewClient(opts ClientOptions, logger zerolog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://www.buda.com/api/v2"
	}

	return &Client{
		opts:    opts,
		logger:  logger.With().Str("component", "buda_client").Logger(),
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type orderBookResponse struct {
	OrderBook struct {
		Asks [][]string `json:"asks"`
		Bids [][]string `json:"bids"`
	} `json:"order_book"`
}

type marketsResponse struct {
	Markets []struct {
		ID string `json:"id"`
	} `json:"markets"`
}

// OrderBook retrieves the raw order book for one market.
func (c *Client) OrderBook(ctx context.Context, marketID string) (spread.RawOrderBook, error) {
	endpoint := fmt.Sprintf("%s/markets/%s/order_book", c.baseURL, url.PathEscape(marketID))

	payload, err := c.get(ctx, endpoint)
	if err != nil {
		return spread.RawOrderBook{}, err
	}

	var decoded orderBookResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return spread.RawOrderBook{}, spread.Internal(fmt.Errorf("decode order book: %w", err))
	}

	return spread.RawOrderBook{
		Asks: decoded.OrderBook.Asks,
		Bids: decoded.OrderBook.Bids,
	}, nil
}

// Markets retrieves the full market catalogue.
func (c *Client) Markets(ctx context.Context) ([]spread.Market, error) {
	payload, err := c.get(ctx, c.baseURL+"/markets")
	if err != nil {
		return nil, err
	}

	var decoded marketsResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, spread.Internal(fmt.Errorf("decode markets: %w", err))
	}

	markets := make([]spread.Market, 0, len(decoded.Markets))
	for _, m := range decoded.Markets {
		markets = append(markets, spread.Market{ID: m.ID})
	}
	return markets, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, spread.Internal(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if ua := strings.TrimSpace(c.opts.UserAgent); ua != "" {
		req.Header.Set("User-Agent", ua)
	} else {
		req.Header.Set("User-Agent", "spread-alerts/1.0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, spread.RemoteUnavailable(0, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, spread.RemoteUnavailable(0, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("buda api request failed")
		return nil, spread.RemoteUnavailable(resp.StatusCode, fmt.Errorf("buda api status %d", resp.StatusCode))
	}

	return payload, nil
}

var _ spread.OrderBookSource = (*Client)(nil)
var _ spread.MarketLister = (*Client)(nil)

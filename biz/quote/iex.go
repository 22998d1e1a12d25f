package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bennett39/stocktrader/biz/money"
)

// Config carries the pricing API settings. It is passed in explicitly at
// construction; the client never reads process environment itself.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Compile-time interface check.
var _ Oracle = (*IEXClient)(nil)

// IEXClient fetches quotes from an IEX-style REST endpoint:
// GET {base}/stable/stock/{symbol}/quote?token={token}
type IEXClient struct {
	cfg    Config
	client *http.Client
}

func NewIEXClient(cfg Config) *IEXClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &IEXClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type iexQuoteBody struct {
	Symbol      string   `json:"symbol"`
	CompanyName string   `json:"companyName"`
	LatestPrice *float64 `json:"latestPrice"`
}

// LookupPrice fetches the current quote for symbol. Any transport error,
// non-2xx status, or malformed body returns ErrUnavailable.
func (c *IEXClient) LookupPrice(ctx context.Context, symbol string) (*Quote, error) {
	u := fmt.Sprintf("%s/stable/stock/%s/quote?token=%s",
		c.cfg.BaseURL, url.PathEscape(symbol), url.QueryEscape(c.cfg.Token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d for %s", ErrUnavailable, resp.StatusCode, symbol)
	}

	var body iexQuoteBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if body.Symbol == "" || body.LatestPrice == nil {
		return nil, fmt.Errorf("%w: incomplete body for %s", ErrUnavailable, symbol)
	}

	return &Quote{
		Symbol: body.Symbol,
		Name:   body.CompanyName,
		Price:  money.FromFloat(*body.LatestPrice),
	}, nil
}

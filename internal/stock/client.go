package stock

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"concierge/config"
	"concierge/internal/provider"
	"concierge/pkg/models"
)

// The quote endpoint is noticeably slower than the other providers, so it gets
// a longer timeout.
const requestTimeout = 10 * time.Second

// Client wraps the Alpha Vantage GLOBAL_QUOTE API.
type Client struct {
	api    *provider.Client
	apiKey string
	logger zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		api:    provider.NewClient(cfg.AlphaVantageURL, requestTimeout, logger),
		apiKey: cfg.AlphaVantageAPIKey,
		logger: logger,
	}
}

type quoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		TradingDay    string `json:"07. latest trading day"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// Quote fetches the latest quote for a symbol. Alpha Vantage answers unknown
// symbols with HTTP 200 and an empty quote object, so absence is detected from
// the payload rather than the status code.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.StockQuote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: ALPHA_VANTAGE_API_KEY not set", provider.ErrMisconfigured)
	}

	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", strings.ToUpper(symbol))
	params.Set("apikey", c.apiKey)
	path := "/query?" + params.Encode()

	c.logger.Debug().Str("symbol", symbol).Msg("fetching stock quote")

	var resp quoteResponse
	if err := c.api.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("stock quote for %q: %w", symbol, err)
	}

	quote := resp.GlobalQuote
	if quote.Symbol == "" {
		return nil, fmt.Errorf("%w: no quote for symbol %q", provider.ErrNotFound, symbol)
	}

	price, err := strconv.ParseFloat(quote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable price %q", provider.ErrInvalidData, quote.Price)
	}

	// Change parses best-effort; a quote without it still renders.
	change, _ := strconv.ParseFloat(quote.Change, 64)

	return &models.StockQuote{
		Symbol:        quote.Symbol,
		Price:         price,
		Change:        change,
		ChangePercent: quote.ChangePercent,
		Timestamp:     quote.TradingDay,
	}, nil
}

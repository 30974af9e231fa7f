package stock

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/config"
	"concierge/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		AlphaVantageURL:    srv.URL,
		AlphaVantageAPIKey: "test-key",
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Global Quote": {
				"01. symbol": "AAPL",
				"05. price": "150.2500",
				"07. latest trading day": "2024-06-03",
				"09. change": "-2.5000",
				"10. change percent": "-1.64%"
			}
		}`))
	})

	quote, err := client.Quote(context.Background(), "aapl")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, 150.25, quote.Price)
	assert.Equal(t, -2.5, quote.Change)
	assert.Equal(t, "-1.64%", quote.ChangePercent)
	assert.Equal(t, "2024-06-03", quote.Timestamp)
}

func TestQuoteUnknownSymbol(t *testing.T) {
	// Alpha Vantage answers unknown symbols with 200 and an empty quote.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Global Quote": {}}`))
	})

	_, err := client.Quote(context.Background(), "XYZZY")
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestQuoteInvalidPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Global Quote": {"01. symbol": "AAPL", "05. price": "n/a"}}`))
	})

	_, err := client.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, provider.ErrInvalidData)
}

func TestQuoteMissingKeySkipsRequest(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	client := NewClient(&config.Config{AlphaVantageURL: srv.URL}, zerolog.Nop())

	_, err := client.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, provider.ErrMisconfigured)
	assert.False(t, requested)
}

func TestQuoteProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(&config.Config{AlphaVantageURL: srv.URL, AlphaVantageAPIKey: "k"}, zerolog.Nop())

	_, err := client.Quote(context.Background(), "AAPL")
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/thing?x=1", r.URL.RequestURI())
		w.Write([]byte(`{"value": 42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())

	var out struct {
		Value int `json:"value"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/thing?x=1", &out))
	assert.Equal(t, 42, out.Value)
}

func TestGetJSONStatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, nil},
		{http.StatusBadGateway, nil},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		client := NewClient(srv.URL, time.Second, zerolog.Nop())
		err := client.GetJSON(context.Background(), "/", &struct{}{})
		require.Error(t, err, "status %d", tt.status)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr)
		} else {
			assert.NotErrorIs(t, err, ErrNotFound)
			assert.NotErrorIs(t, err, ErrUnavailable)
		}

		srv.Close()
	}
}

func TestGetJSONTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := client.GetJSON(context.Background(), "/", &struct{}{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetJSONMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := client.GetJSON(context.Background(), "/", &struct{}{})
	assert.ErrorIs(t, err, ErrInvalidData)
}

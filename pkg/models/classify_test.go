package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKind ResultKind
	}{
		{
			name:     "weather by location and temperature",
			content:  `{"location":"Paris","country":"FR","temperature":18,"feelsLike":17,"humidity":65,"pressure":1013,"description":"clear","windSpeed":3.5}`,
			wantKind: KindWeather,
		},
		{
			name:     "race by raceName and round",
			content:  `{"raceName":"Monaco Grand Prix","round":8,"circuit":"Circuit de Monaco","location":"Monte-Carlo, Monaco","date":"2024-05-26","time":"13:00 UTC"}`,
			wantKind: KindRace,
		},
		{
			name:     "stock by symbol and price",
			content:  `{"symbol":"AAPL","price":150.25,"change":-2.5,"changePercent":"-1.64%","timestamp":"2024-06-03"}`,
			wantKind: KindStock,
		},
		{
			name:     "error key wins over everything",
			content:  `{"error":"boom","symbol":"AAPL","price":1}`,
			wantKind: KindError,
		},
		{
			name:     "bare message is info",
			content:  `{"message":"No races found for this season"}`,
			wantKind: KindInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := Classify(tt.content)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, result.Kind)
		})
	}
}

func TestClassifyRequiresBothDiscriminatorFields(t *testing.T) {
	// A location without a temperature is not weather; with no other
	// discriminator present the payload stays unclassified.
	_, ok := Classify(`{"location":"Paris"}`)
	assert.False(t, ok)

	_, ok = Classify(`{"symbol":"AAPL"}`)
	assert.False(t, ok)
}

func TestClassifyRejectsPlainText(t *testing.T) {
	for _, content := range []string{"Hello! I can help you with:", "", "🌤️ Weather in Paris"} {
		_, ok := Classify(content)
		assert.False(t, ok, "content %q", content)
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	original := StockResult(&StockQuote{Symbol: "AAPL", Price: 150.25, Change: -2.5, ChangePercent: "-1.64%", Timestamp: "2024-06-03"})

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	classified, ok := Classify(string(payload))
	require.True(t, ok)
	assert.Equal(t, KindStock, classified.Kind)
	assert.Equal(t, original.Stock.Price, classified.Stock.Price)
	assert.Equal(t, original.Stock.ChangePercent, classified.Stock.ChangePercent)
}

func TestToolResultMarshalShapes(t *testing.T) {
	infoJSON, err := json.Marshal(InfoResult("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hi"}`, string(infoJSON))

	errJSON, err := json.Marshal(ErrorResult("boom"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(errJSON))
}

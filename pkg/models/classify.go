package models

import "encoding/json"

// Classify inspects a raw assistant payload and recovers the ToolResult it
// encodes. Payloads are discriminated by field presence, in this order:
// an "error" key wins, then location+temperature means weather, raceName+round
// means race, symbol+price means stock, and a bare "message" is informational.
// Non-JSON content (the plain-text reply path) returns ok=false.
func Classify(content string) (ToolResult, bool) {
	var probe struct {
		Error       *string          `json:"error"`
		Location    *string          `json:"location"`
		Temperature *json.RawMessage `json:"temperature"`
		RaceName    *string          `json:"raceName"`
		Round       *json.RawMessage `json:"round"`
		Symbol      *string          `json:"symbol"`
		Price       *json.RawMessage `json:"price"`
		Message     *string          `json:"message"`
	}

	if err := json.Unmarshal([]byte(content), &probe); err != nil {
		return ToolResult{}, false
	}

	switch {
	case probe.Error != nil:
		return ErrorResult(*probe.Error), true
	case probe.Location != nil && probe.Temperature != nil:
		var w WeatherReport
		if err := json.Unmarshal([]byte(content), &w); err != nil {
			return ToolResult{}, false
		}
		return WeatherResult(&w), true
	case probe.RaceName != nil && probe.Round != nil:
		var r RaceEvent
		if err := json.Unmarshal([]byte(content), &r); err != nil {
			return ToolResult{}, false
		}
		return RaceResult(&r), true
	case probe.Symbol != nil && probe.Price != nil:
		var q StockQuote
		if err := json.Unmarshal([]byte(content), &q); err != nil {
			return ToolResult{}, false
		}
		return StockResult(&q), true
	case probe.Message != nil:
		return InfoResult(*probe.Message), true
	}

	return ToolResult{}, false
}

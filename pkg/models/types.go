package models

import "encoding/json"

// WeatherReport is the normalized shape of an OpenWeatherMap current-conditions
// response. Temperatures are metric and rounded to whole degrees.
type WeatherReport struct {
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon,omitempty"`
}

// StockQuote is the normalized shape of an Alpha Vantage GLOBAL_QUOTE response.
// ChangePercent is kept as the provider formats it (e.g. "-1.64%").
type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent string  `json:"changePercent"`
	Timestamp     string  `json:"timestamp"`
}

// RaceEvent is one entry from the Formula 1 season calendar.
type RaceEvent struct {
	RaceName string `json:"raceName"`
	Round    int    `json:"round"`
	Circuit  string `json:"circuit"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type ResultKind string

const (
	KindWeather ResultKind = "weather"
	KindRace    ResultKind = "race"
	KindStock   ResultKind = "stock"
	KindInfo    ResultKind = "info"
	KindError   ResultKind = "error"
)

// ToolResult is a tagged union over the outcomes of a single tool invocation.
// Exactly one payload field is populated, matching Kind.
type ToolResult struct {
	Kind    ResultKind
	Weather *WeatherReport
	Stock   *StockQuote
	Race    *RaceEvent
	Info    string
	Err     string
}

func WeatherResult(w *WeatherReport) ToolResult { return ToolResult{Kind: KindWeather, Weather: w} }
func StockResult(q *StockQuote) ToolResult      { return ToolResult{Kind: KindStock, Stock: q} }
func RaceResult(r *RaceEvent) ToolResult        { return ToolResult{Kind: KindRace, Race: r} }
func InfoResult(msg string) ToolResult          { return ToolResult{Kind: KindInfo, Info: msg} }
func ErrorResult(msg string) ToolResult         { return ToolResult{Kind: KindError, Err: msg} }

// MarshalJSON encodes the populated payload directly, without an envelope, so
// the wire shape stays compatible with clients that classify by field presence.
func (r ToolResult) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindWeather:
		return json.Marshal(r.Weather)
	case KindStock:
		return json.Marshal(r.Stock)
	case KindRace:
		return json.Marshal(r.Race)
	case KindInfo:
		return json.Marshal(map[string]string{"message": r.Info})
	case KindError:
		return json.Marshal(map[string]string{"error": r.Err})
	default:
		return json.Marshal(nil)
	}
}

// ChatMessage is one entry of a chat transcript as exchanged over the API.
type ChatMessage struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"concierge/pkg/models"
)

// The emoji prefixes are purely a visual scanning aid for humans; nothing
// parses them.

const greetingText = "Hello! I can help you with:\n\n" +
	"🌤️ Weather - just type a city name\n" +
	"🏎️ F1 races - type \"f1\" or \"race\"\n" +
	"📈 Stock prices - type a stock symbol like AAPL\n\n" +
	"What would you like to know?"

const stockErrorText = "Sorry, I couldn't get stock data. Please try with a valid stock symbol like AAPL, GOOGL, MSFT."

// placeholderRace stands in for live calendar data when the race provider is
// unreachable, so a transport failure never dead-ends the conversation.
func placeholderRace() models.RaceEvent {
	return models.RaceEvent{
		RaceName: "Abu Dhabi Grand Prix",
		Round:    24,
		Circuit:  "Yas Marina Circuit",
		Location: "Abu Dhabi, UAE",
		Date:     "2024-12-08",
		Time:     "13:00 UTC",
	}
}

const raceFallbackText = "🏎️ Next Formula 1 Race (Mock Data):\n\n" +
	"Race: Abu Dhabi Grand Prix\n" +
	"Circuit: Yas Marina Circuit\n" +
	"Location: Abu Dhabi, UAE\n" +
	"Date: 2024-12-08\n" +
	"Time: 13:00 UTC\n\n" +
	"Note: Live F1 API is currently unavailable."

func weatherErrorText(utterance string) string {
	return fmt.Sprintf("Sorry, I couldn't get weather data for %q. Please try with a valid city name.", utterance)
}

func combinedErrorText(utterance string) string {
	return fmt.Sprintf("Sorry, %q is not a valid stock symbol or city name.", utterance)
}

// formatResult renders a tagged tool result as the assistant-visible text
// block. It never inspects payload structure; the tag decides.
func formatResult(res models.ToolResult) string {
	switch res.Kind {
	case models.KindWeather:
		return formatWeather(res.Weather)
	case models.KindStock:
		return formatStock(res.Stock)
	case models.KindRace:
		return formatRace(res.Race)
	case models.KindInfo:
		return fmt.Sprintf("🏎️ F1 Info: %s", res.Info)
	case models.KindError:
		return res.Err
	default:
		return greetingText
	}
}

func formatWeather(w *models.WeatherReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🌤️ Weather in %s, %s:\n\n", w.Location, w.Country)
	fmt.Fprintf(&sb, "Temperature: %d°C (feels like %d°C)\n", w.Temperature, w.FeelsLike)
	fmt.Fprintf(&sb, "Condition: %s\n", w.Description)
	fmt.Fprintf(&sb, "Humidity: %d%%\n", w.Humidity)
	fmt.Fprintf(&sb, "Wind: %s m/s\n", strconv.FormatFloat(w.WindSpeed, 'f', -1, 64))
	fmt.Fprintf(&sb, "Pressure: %d hPa", w.Pressure)
	return sb.String()
}

func formatStock(q *models.StockQuote) string {
	sign := ""
	if q.Change > 0 {
		sign = "+"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📈 Stock Price for %s:\n\n", q.Symbol)
	fmt.Fprintf(&sb, "Current Price: $%.2f\n", q.Price)
	fmt.Fprintf(&sb, "Change: %s%.2f (%s)\n", sign, q.Change, q.ChangePercent)
	fmt.Fprintf(&sb, "Last Updated: %s", q.Timestamp)
	return sb.String()
}

func formatRace(r *models.RaceEvent) string {
	var sb strings.Builder
	sb.WriteString("🏎️ Next Formula 1 Race:\n\n")
	fmt.Fprintf(&sb, "Race: %s\n", r.RaceName)
	fmt.Fprintf(&sb, "Circuit: %s\n", r.Circuit)
	fmt.Fprintf(&sb, "Location: %s\n", r.Location)
	fmt.Fprintf(&sb, "Date: %s\n", r.Date)
	fmt.Fprintf(&sb, "Time: %s", r.Time)
	return sb.String()
}

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"concierge/pkg/models"
)

func TestFormatStock(t *testing.T) {
	quote := &models.StockQuote{
		Symbol:        "AAPL",
		Price:         150.25,
		Change:        -2.50,
		ChangePercent: "-1.64%",
		Timestamp:     "2024-06-03",
	}

	got := formatResult(models.StockResult(quote))

	assert.Contains(t, got, "📈 Stock Price for AAPL:")
	assert.Contains(t, got, "$150.25")
	assert.Contains(t, got, "-2.50 (-1.64%)")
	assert.Contains(t, got, "Last Updated: 2024-06-03")
}

func TestFormatStockPositiveChangeGetsPlusSign(t *testing.T) {
	quote := &models.StockQuote{
		Symbol:        "MSFT",
		Price:         420.00,
		Change:        3.12,
		ChangePercent: "0.75%",
		Timestamp:     "2024-06-03",
	}

	got := formatResult(models.StockResult(quote))
	assert.Contains(t, got, "Change: +3.12 (0.75%)")
}

func TestFormatWeather(t *testing.T) {
	report := &models.WeatherReport{
		Location:    "Paris",
		Country:     "FR",
		Temperature: 18,
		FeelsLike:   17,
		Humidity:    65,
		Pressure:    1013,
		Description: "scattered clouds",
		WindSpeed:   3.5,
	}

	got := formatResult(models.WeatherResult(report))

	assert.Contains(t, got, "🌤️ Weather in Paris, FR:")
	assert.Contains(t, got, "Temperature: 18°C (feels like 17°C)")
	assert.Contains(t, got, "Condition: scattered clouds")
	assert.Contains(t, got, "Humidity: 65%")
	assert.Contains(t, got, "Wind: 3.5 m/s")
	assert.Contains(t, got, "Pressure: 1013 hPa")
}

func TestFormatRace(t *testing.T) {
	race := &models.RaceEvent{
		RaceName: "Monaco Grand Prix",
		Round:    8,
		Circuit:  "Circuit de Monaco",
		Location: "Monte-Carlo, Monaco",
		Date:     "2024-05-26",
		Time:     "13:00 UTC",
	}

	got := formatResult(models.RaceResult(race))

	assert.Contains(t, got, "🏎️ Next Formula 1 Race:")
	assert.Contains(t, got, "Race: Monaco Grand Prix")
	assert.Contains(t, got, "Circuit: Circuit de Monaco")
	assert.Contains(t, got, "Location: Monte-Carlo, Monaco")
	assert.Contains(t, got, "Date: 2024-05-26")
	assert.Contains(t, got, "Time: 13:00 UTC")
}

func TestFormatInfo(t *testing.T) {
	got := formatResult(models.InfoResult("No races found for this season"))
	assert.Equal(t, "🏎️ F1 Info: No races found for this season", got)
}

func TestFormatErrorPassesMessageThrough(t *testing.T) {
	got := formatResult(models.ErrorResult(stockErrorText))
	assert.Equal(t, stockErrorText, got)
}

func TestGreetingListsCapabilities(t *testing.T) {
	assert.Contains(t, greetingText, "🌤️ Weather")
	assert.Contains(t, greetingText, "🏎️ F1 races")
	assert.Contains(t, greetingText, "📈 Stock prices")
}

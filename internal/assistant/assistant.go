package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"concierge/pkg/models"
)

var errEmptyTranscript = errors.New("no messages in request")

// WeatherService, StockService and RaceService are the external data
// collaborators the assistant orchestrates. The concrete adapters live in
// internal/weather, internal/stock and internal/f1.
type WeatherService interface {
	Current(ctx context.Context, location string) (*models.WeatherReport, error)
}

type StockService interface {
	Quote(ctx context.Context, symbol string) (*models.StockQuote, error)
}

type RaceService interface {
	NextRace(ctx context.Context, now time.Time) (*models.RaceEvent, string, error)
}

// Assistant answers one utterance per call using the keyword-heuristic router:
// classify the latest message, invoke at most one data tool (two sequentially
// for the ambiguous short-token branch), render the result. Every provider
// failure is converted to a user-facing string here; nothing escapes as an
// error except a missing transcript.
type Assistant struct {
	weather WeatherService
	stock   StockService
	races   RaceService
	logger  zerolog.Logger
	now     func() time.Time
}

func New(weather WeatherService, stock StockService, races RaceService, logger zerolog.Logger) *Assistant {
	return &Assistant{
		weather: weather,
		stock:   stock,
		races:   races,
		logger:  logger,
		now:     time.Now,
	}
}

// Reply routes the last message of the transcript and returns the assistant's
// text block. Earlier messages are ignored; each exchange stands alone.
func (a *Assistant) Reply(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", errEmptyTranscript
	}

	utterance := messages[len(messages)-1].Content
	decision := route(utterance)

	a.logger.Info().
		Str("intent", decision.Intent.String()).
		Str("query", decision.Query).
		Msg("routing utterance")

	return formatResult(a.execute(ctx, decision)), nil
}

func (a *Assistant) execute(ctx context.Context, d Decision) models.ToolResult {
	switch d.Intent {
	case IntentStock:
		quote, err := a.stock.Quote(ctx, d.Query)
		if err != nil {
			a.logger.Warn().Err(err).Str("symbol", d.Query).Msg("stock lookup failed")
			return models.ErrorResult(stockErrorText)
		}
		return models.StockResult(quote)

	case IntentRace:
		race, info, err := a.races.NextRace(ctx, a.now())
		if err != nil {
			// Calendar provider down: substitute the static placeholder so
			// the conversation never dead-ends.
			a.logger.Warn().Err(err).Msg("race calendar unavailable, using placeholder")
			return models.ErrorResult(raceFallbackText)
		}
		if info != "" {
			return models.InfoResult(info)
		}
		return models.RaceResult(race)

	case IntentShortAmbiguous:
		// A short alphabetic token reads as either a ticker or a city.
		// Policy: stock first, weather on stock failure, one combined
		// error when both fail.
		quote, stockErr := a.stock.Quote(ctx, d.Query)
		if stockErr == nil {
			return models.StockResult(quote)
		}
		a.logger.Debug().Err(stockErr).Str("token", d.Query).Msg("stock failed, trying weather")

		report, weatherErr := a.weather.Current(ctx, d.WeatherFallback)
		if weatherErr == nil {
			return models.WeatherResult(report)
		}
		a.logger.Warn().Err(weatherErr).Str("token", d.WeatherFallback).Msg("weather fallback failed")
		return models.ErrorResult(combinedErrorText(d.Utterance))

	case IntentWeatherDefault:
		report, err := a.weather.Current(ctx, d.Query)
		if err != nil {
			a.logger.Warn().Err(err).Str("location", d.Query).Msg("weather lookup failed")
			return models.ErrorResult(weatherErrorText(d.Utterance))
		}
		return models.WeatherResult(report)

	default:
		return models.ToolResult{}
	}
}

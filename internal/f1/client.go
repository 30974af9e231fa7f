package f1

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"concierge/config"
	"concierge/internal/provider"
	"concierge/pkg/models"
)

const requestTimeout = 5 * time.Second

const (
	MsgNoRaces    = "No races found for this season"
	MsgNoUpcoming = "No upcoming races found for this season"
)

// Client wraps an Ergast-compatible Formula 1 calendar API.
type Client struct {
	api    *provider.Client
	logger zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		api:    provider.NewClient(cfg.ErgastURL, requestTimeout, logger),
		logger: logger,
	}
}

type seasonResponse struct {
	MRData struct {
		RaceTable struct {
			Races []struct {
				RaceName string `json:"raceName"`
				Round    string `json:"round"`
				Date     string `json:"date"`
				Time     string `json:"time"`
				Circuit  struct {
					CircuitName string `json:"circuitName"`
					Location    struct {
						Locality string `json:"locality"`
						Country  string `json:"country"`
					} `json:"Location"`
				} `json:"Circuit"`
			} `json:"Races"`
		} `json:"RaceTable"`
	} `json:"MRData"`
}

// NextRace scans the current season's calendar in listed order and returns the
// first race dated strictly after now. A season with no races, or none left,
// returns an informational message instead of an error; only transport or
// decode failures surface as errors.
func (c *Client) NextRace(ctx context.Context, now time.Time) (*models.RaceEvent, string, error) {
	path := fmt.Sprintf("/api/f1/%d.json", now.Year())

	c.logger.Debug().Int("season", now.Year()).Msg("fetching race calendar")

	var resp seasonResponse
	if err := c.api.GetJSON(ctx, path, &resp); err != nil {
		return nil, "", fmt.Errorf("race calendar: %w", err)
	}

	races := resp.MRData.RaceTable.Races
	if len(races) == 0 {
		return nil, MsgNoRaces, nil
	}

	for _, race := range races {
		raceDate, err := time.Parse("2006-01-02", race.Date)
		if err != nil || !raceDate.After(now) {
			continue
		}

		round, _ := strconv.Atoi(race.Round)
		return &models.RaceEvent{
			RaceName: race.RaceName,
			Round:    round,
			Circuit:  race.Circuit.CircuitName,
			Location: fmt.Sprintf("%s, %s", race.Circuit.Location.Locality, race.Circuit.Location.Country),
			Date:     race.Date,
			Time:     formatStartTime(race.Time),
		}, "", nil
	}

	return nil, MsgNoUpcoming, nil
}

// formatStartTime normalizes Ergast's "13:00:00Z" to "13:00 UTC". Unparseable
// values pass through untouched; a missing time becomes "TBA".
func formatStartTime(raw string) string {
	if raw == "" {
		return "TBA"
	}
	t, err := time.Parse("15:04:05Z", raw)
	if err != nil {
		return raw
	}
	return t.Format("15:04") + " UTC"
}

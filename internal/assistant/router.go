package assistant

import "strings"

// Intent classifies one user utterance into a handling branch.
type Intent int

const (
	IntentGreeting Intent = iota
	IntentStock
	IntentRace
	IntentShortAmbiguous
	IntentWeatherDefault
)

func (i Intent) String() string {
	switch i {
	case IntentStock:
		return "stock"
	case IntentRace:
		return "race"
	case IntentShortAmbiguous:
		return "short_ambiguous"
	case IntentWeatherDefault:
		return "weather"
	default:
		return "greeting"
	}
}

// Decision is the router's verdict for one utterance. Query carries the
// extracted tool argument; WeatherFallback is set only for the short-ambiguous
// branch, where the raw token doubles as a city-name candidate.
type Decision struct {
	Intent          Intent
	Utterance       string
	Query           string
	WeatherFallback string
}

// routes is the ordered first-match decision chain.
// The ordering is a contract, not an accident: "stock" outranks the race
// keywords, which outrank the short-token branch, which outranks the very
// broad weather catch-all. "f1 stock" is therefore a stock request.
var routes = []struct {
	match func(u string) bool
	build func(u string) Decision
}{
	{
		match: func(u string) bool { return strings.Contains(u, "stock") },
		build: func(u string) Decision {
			arg := strings.ToUpper(strings.TrimSpace(strings.Replace(u, "stock", "", 1)))
			return Decision{Intent: IntentStock, Utterance: u, Query: arg}
		},
	},
	{
		match: func(u string) bool {
			return strings.Contains(u, "f1") || strings.Contains(u, "race") || strings.Contains(u, "formula")
		},
		build: func(u string) Decision {
			return Decision{Intent: IntentRace, Utterance: u}
		},
	},
	{
		match: func(u string) bool { return len(u) <= 5 && isAlphabetic(u) },
		build: func(u string) Decision {
			return Decision{
				Intent:          IntentShortAmbiguous,
				Utterance:       u,
				Query:           strings.ToUpper(u),
				WeatherFallback: u,
			}
		},
	},
	{
		// Deliberately broad: almost any multi-character input lands here.
		// Kept as-is for compatibility with the established behavior.
		match: func(u string) bool {
			return strings.Contains(u, "weather") || strings.Contains(u, "temperature") || len(u) > 2
		},
		build: func(u string) Decision {
			arg := strings.TrimSpace(strings.Replace(u, "weather", "", 1))
			if arg == "" {
				arg = u
			}
			return Decision{Intent: IntentWeatherDefault, Utterance: u, Query: arg}
		},
	},
}

// route classifies an utterance. Matching is substring-based over the
// lower-cased text; the first matching rule wins.
func route(utterance string) Decision {
	u := strings.ToLower(utterance)

	for _, r := range routes {
		if r.match(u) {
			return r.build(u)
		}
	}

	return Decision{Intent: IntentGreeting, Utterance: u}
}

// isAlphabetic reports whether s is non-empty and all ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Package weather rolls flavor-text weather from static season/zone
// tables. Pure lookup plus a uniform pick, no game state involved.
package weather

import (
	"math/rand"
	"strings"
	"sync"

	"tokenbag/errors"
)

// Report is one rolled forecast.
type Report struct {
	Season  string `json:"season"`
	Zone    string `json:"zone"`
	Weather string `json:"weather"`
}

// Generator picks forecasts from the tables. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate rolls a forecast for the given season and zone. Inputs are
// case-insensitive; unknown combinations fail with ErrUnknownForecast.
func (g *Generator) Generate(season, zone string) (Report, error) {
	season = strings.ToLower(strings.TrimSpace(season))
	zone = strings.ToLower(strings.TrimSpace(zone))

	zones, ok := tables[season]
	if !ok {
		return Report{}, errors.ErrUnknownForecast
	}
	options, ok := zones[zone]
	if !ok {
		return Report{}, errors.ErrUnknownForecast
	}

	g.mu.Lock()
	weather := options[g.rng.Intn(len(options))]
	g.mu.Unlock()

	return Report{
		Season:  title(season),
		Zone:    title(zone),
		Weather: weather,
	}, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

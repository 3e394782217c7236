package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
)

// League is the optional per-club league definition file.
//
//	name: Kegelclub Alle Neune
//	season_start_month: 9
//	formats:
//	  nines: { label: "Neuner", slots: 10 }
//	  relay: { label: "Staffel", slots: 8 }
type League struct {
	Name             string                   `yaml:"name"`
	SeasonStartMonth int                      `yaml:"season_start_month"`
	Formats          map[string]FormatOptions `yaml:"formats"`
}

type FormatOptions struct {
	Label string `yaml:"label"`
	Slots int    `yaml:"slots"`
}

// LoadLeague reads and validates a league file. An empty path yields the defaults.
func LoadLeague(path string) (*League, error) {
	league := &League{Formats: map[string]FormatOptions{}}
	if path == "" {
		return league, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read league file: %w", err)
	}
	return ParseLeague(raw)
}

// ParseLeague decodes league YAML and rejects unknown formats.
func ParseLeague(raw []byte) (*League, error) {
	league := &League{}
	if err := yaml.Unmarshal(raw, league); err != nil {
		return nil, fmt.Errorf("parse league file: %w", err)
	}
	if league.Formats == nil {
		league.Formats = map[string]FormatOptions{}
	}
	for name, opts := range league.Formats {
		format, err := models.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("league file: %q: %w", name, err)
		}
		if opts.Slots < 0 {
			return nil, fmt.Errorf("league file: %q: negative slots", name)
		}
		if opts.Slots > 0 && !format.HasHistogram() {
			return nil, fmt.Errorf("league file: %q: format has no placement histogram", name)
		}
	}
	if league.SeasonStartMonth < 0 || league.SeasonStartMonth > 12 {
		return nil, fmt.Errorf("league file: season_start_month out of range: %d", league.SeasonStartMonth)
	}
	return league, nil
}

// Label returns the display label of a format, falling back to its name.
func (l *League) Label(f models.Format) string {
	if opts, ok := l.Formats[string(f)]; ok && opts.Label != "" {
		return opts.Label
	}
	return string(f)
}

// ReportOptions applies per-format slot overrides on top of the defaults.
func (l *League) ReportOptions() logic.ReportOptions {
	opts := logic.DefaultReportOptions()
	for name, fo := range l.Formats {
		if fo.Slots > 0 {
			opts.Slots[models.Format(name)] = fo.Slots
		}
	}
	return opts
}

// SeasonStart returns the league's season start month, or fallback if unset.
func (l *League) SeasonStart(fallback int) int {
	if l.SeasonStartMonth > 0 {
		return l.SeasonStartMonth
	}
	return fallback
}

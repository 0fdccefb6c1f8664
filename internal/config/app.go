package config

import (
	"time"
	// zone database for minimal containers
	_ "time/tzdata"
)

const (
	defaultLookaheadDays = 14
	defaultTimezone      = "UTC"
	defaultDayPolicy     = "clamp"
	defaultMonthAdvance  = "approximate"
)

type AppConfig struct {
	Lookahead     int    `yaml:"lookahead-days"`
	TimezoneName  string `yaml:"timezone"`
	DayPolicyName string `yaml:"day-policy"`
	AdvanceName   string `yaml:"month-advance"`
}

func (s *AppConfig) LookaheadDays() int {
	return s.Lookahead
}

// Location is the single reference clock for due dates. The name is checked
// when the config is parsed; UTC is only a fallback for hand-built configs.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) DayPolicy() string {
	return s.DayPolicyName
}

func (s *AppConfig) MonthAdvance() string {
	return s.AdvanceName
}

package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Sport string

const (
	SportFootball    Sport = "football"
	SportBasketball  Sport = "basketball"
	SportTennis      Sport = "tennis"
	SportRugby       Sport = "rugby"
	SportVolleyball  Sport = "volleyball"
	SportHandball    Sport = "handball"
	SportBadminton   Sport = "badminton"
	SportTableTennis Sport = "table_tennis"
	SportSwimming    Sport = "swimming"
	SportAthletics   Sport = "athletics"
	SportCycling     Sport = "cycling"
	SportMartialArts Sport = "martial_arts"
	SportHockey      Sport = "hockey"
	SportBaseball    Sport = "baseball"
	SportGolf        Sport = "golf"
)

func (s Sport) Valid() bool {
	switch s {
	case SportFootball, SportBasketball, SportTennis, SportRugby,
		SportVolleyball, SportHandball, SportBadminton, SportTableTennis,
		SportSwimming, SportAthletics, SportCycling, SportMartialArts,
		SportHockey, SportBaseball, SportGolf:
		return true
	}
	return false
}

type AvailabilityStatus string

const (
	AvailabilityFit       AvailabilityStatus = "fit"
	AvailabilityReturning AvailabilityStatus = "returning"
	AvailabilityInjured   AvailabilityStatus = "injured"
)

func (a AvailabilityStatus) Valid() bool {
	return a == AvailabilityFit || a == AvailabilityReturning || a == AvailabilityInjured
}

type MetricKey string

const (
	MetricAvailabilityMinutes MetricKey = "availabilityMinutes"
	MetricMatchesPlayed       MetricKey = "matchesPlayed"
	MetricDecisiveActions     MetricKey = "decisiveActions"
	MetricMaxSpeedKmh         MetricKey = "maxSpeedKmh"
	MetricTrainingVolume      MetricKey = "trainingVolumeMinPerWeek"
	MetricPenaltiesEvents     MetricKey = "penaltiesEvents"
)

func (k MetricKey) Valid() bool {
	switch k {
	case MetricAvailabilityMinutes, MetricMatchesPlayed, MetricDecisiveActions,
		MetricMaxSpeedKmh, MetricTrainingVolume, MetricPenaltiesEvents:
		return true
	}
	return false
}

// PerformanceStat is one self-reported metric inside a player's per-sport
// snapshot. Label is display-only; when omitted on write the server fills
// the default label for (key, sport).
type PerformanceStat struct {
	Key    MetricKey `json:"key"`
	Value  float64   `json:"value"`
	Unit   string    `json:"unit,omitempty"`
	Label  string    `json:"label,omitempty"`
	Period string    `json:"period,omitempty"` // e.g. "28j", "12m"
}

// PerformanceSummary is a player's lightweight performance CV for one sport.
// No history is retained; each update replaces the sport's snapshot wholesale.
type PerformanceSummary struct {
	RolePrimary        string             `json:"role_primary,omitempty"`
	Level              string             `json:"level,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	Stats              []PerformanceStat  `json:"stats"`
}

// Validate checks a submitted snapshot against the closed enums and fills
// default labels for stats that omit one.
func (p *PerformanceSummary) Validate(sport Sport) error {
	if !sport.Valid() {
		return fmt.Errorf("unknown sport %q", sport)
	}
	if !p.AvailabilityStatus.Valid() {
		return fmt.Errorf("invalid availability status %q", p.AvailabilityStatus)
	}
	for i := range p.Stats {
		if !p.Stats[i].Key.Valid() {
			return fmt.Errorf("unknown metric key %q", p.Stats[i].Key)
		}
		if p.Stats[i].Label == "" {
			p.Stats[i].Label = MetricLabel(p.Stats[i].Key, sport)
		}
	}
	return nil
}

// PerformanceCV is the JSONB users column: one snapshot per sport.
type PerformanceCV map[Sport]PerformanceSummary

func (cv PerformanceCV) Value() (driver.Value, error) {
	if cv == nil {
		return nil, nil
	}
	return json.Marshal(cv)
}

// Scan unmarshals a JSONB column into the map.
func (cv *PerformanceCV) Scan(src interface{}) error {
	if src == nil {
		*cv = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("PerformanceCV: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, cv)
}

// Merge replaces the snapshot for one sport and keeps every other sport's
// snapshot untouched.
func (cv PerformanceCV) Merge(sport Sport, summary PerformanceSummary) PerformanceCV {
	out := PerformanceCV{}
	for k, v := range cv {
		out[k] = v
	}
	out[sport] = summary
	return out
}

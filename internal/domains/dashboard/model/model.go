package model

import (
	"encoding/json"
	"fmt"
	"maps"
)

const (
	EntityName = "dashboard"

	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// Series is a labelled data set as the server prepares it for charting.
type Series struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Stats is computed entirely by the server. Keys the console does not know are
// kept in Extra and written back unchanged.
type Stats struct {
	TotalGuests          int                        `json:"totalGuests"`
	TotalBookings        int                        `json:"totalBookings"`
	TotalRevenue         float64                    `json:"totalRevenue"`
	OccupancyRate        float64                    `json:"occupancyRate"`
	BookingTrends        *Series                    `json:"bookingTrends,omitempty"`
	RoomTypeDistribution *Series                    `json:"roomTypeDistribution,omitempty"`
	RecentBookings       []json.RawMessage          `json:"recentBookings"`
	Extra                map[string]json.RawMessage `json:"-"`
}

type statsAlias Stats

var knownKeys = []string{
	"totalGuests",
	"totalBookings",
	"totalRevenue",
	"occupancyRate",
	"bookingTrends",
	"roomTypeDistribution",
	"recentBookings",
}

func (s *Stats) UnmarshalJSON(data []byte) error {
	var alias statsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("failed to decode stats: %w", err)
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("failed to decode stats keys: %w", err)
	}

	for _, key := range knownKeys {
		delete(all, key)
	}

	*s = Stats(alias)

	if len(all) > 0 {
		s.Extra = all
	}

	return nil
}

func (s Stats) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(statsAlias(s))
	if err != nil {
		return nil, err
	}

	if len(s.Extra) == 0 {
		return known, nil
	}

	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}

	extra := maps.Clone(s.Extra)
	for _, key := range knownKeys {
		delete(extra, key)
	}

	maps.Copy(merged, extra)

	return json.Marshal(merged)
}

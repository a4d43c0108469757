package dto

import (
	"staytrack/internal/domains/dashboard/model"
	"staytrack/shared/constant"
	"staytrack/shared/timezone"
	"time"
)

type StatsRequest struct {
	Range string `json:"range" validate:"required,oneof=week month year"`
}

// Normalize applies the default range used by the dashboard on first load.
func (r *StatsRequest) Normalize() {
	if r.Range == "" {
		r.Range = model.RangeWeek
	}
}

type StatsResponse struct {
	Range     string      `json:"range"`
	FetchedAt string      `json:"fetched_at"`
	Stats     model.Stats `json:"stats"`
}

func (r *StatsResponse) FromModel(rangeName string, stats model.Stats, fetchedAt time.Time) {
	r.Range = rangeName
	r.Stats = stats
	r.FetchedAt = timezone.Format(fetchedAt, constant.DateFormat)
}

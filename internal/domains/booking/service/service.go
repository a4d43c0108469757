package service

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/booking/model"
	"staytrack/internal/domains/booking/model/dto"
	"staytrack/internal/domains/booking/repository"
	"staytrack/shared/cache"
	"staytrack/shared/resource"
)

// Booking manages the bookings collection. Guest and room references arrive
// either as ids or populated documents and are edited as ids.
type Booking interface {
	resource.Manager[model.Booking, dto.Draft]
}

func New(repo repository.Booking, cache cache.RedisCache, otel otel.Otel) Booking {
	var mirror resource.Mirror
	if cache != nil {
		mirror = cache
	}

	return resource.NewSession(dto.Descriptor, repo, mirror, otel)
}

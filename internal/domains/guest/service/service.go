package service

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/guest/model"
	"staytrack/internal/domains/guest/model/dto"
	"staytrack/internal/domains/guest/repository"
	"staytrack/shared/cache"
	"staytrack/shared/resource"
)

type Guest interface {
	resource.Manager[model.Guest, dto.Draft]
}

// New returns the guest session. cache may be nil when the mirror is disabled.
func New(repo repository.Guest, cache cache.RedisCache, otel otel.Otel) Guest {
	var mirror resource.Mirror
	if cache != nil {
		mirror = cache
	}

	return resource.NewSession(dto.Descriptor, repo, mirror, otel)
}

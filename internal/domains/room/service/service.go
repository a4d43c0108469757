package service

import (
	"staytrack/infras/otel"
	"staytrack/internal/domains/room/model"
	"staytrack/internal/domains/room/model/dto"
	"staytrack/internal/domains/room/repository"
	"staytrack/shared/cache"
	"staytrack/shared/resource"
)

type Room interface {
	resource.Manager[model.Room, dto.Draft]
}

func New(repo repository.Room, cache cache.RedisCache, otel otel.Otel) Room {
	var mirror resource.Mirror
	if cache != nil {
		mirror = cache
	}

	return resource.NewSession(dto.Descriptor, repo, mirror, otel)
}

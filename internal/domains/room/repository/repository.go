package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/internal/domains/room/model"
	"staytrack/internal/domains/room/model/dto"
	gRepo "staytrack/shared/repository"
)

type Room interface {
	List(ctx context.Context, term string) ([]model.Room, error)
	Create(ctx context.Context, draft dto.Draft) (model.Room, error)
	Update(ctx context.Context, id string, draft dto.Draft) (model.Room, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Remote[model.Room, dto.Draft]
}

func New(client api.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		Remote: gRepo.NewRemote(dto.Descriptor, client, otel),
	}
}

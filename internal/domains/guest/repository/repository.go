package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/internal/domains/guest/model"
	"staytrack/internal/domains/guest/model/dto"
	gRepo "staytrack/shared/repository"
)

type Guest interface {
	List(ctx context.Context, term string) ([]model.Guest, error)
	Create(ctx context.Context, draft dto.Draft) (model.Guest, error)
	Update(ctx context.Context, id string, draft dto.Draft) (model.Guest, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Remote[model.Guest, dto.Draft]
}

func New(client api.Client, otel otel.Otel) Guest {
	return &repositoryImpl{
		Remote: gRepo.NewRemote(dto.Descriptor, client, otel),
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/internal/domains/booking/model"
	"staytrack/internal/domains/booking/model/dto"
	gRepo "staytrack/shared/repository"
)

type Booking interface {
	List(ctx context.Context, term string) ([]model.Booking, error)
	Create(ctx context.Context, draft dto.Draft) (model.Booking, error)
	Update(ctx context.Context, id string, draft dto.Draft) (model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Remote[model.Booking, dto.Draft]
}

func New(client api.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		Remote: gRepo.NewRemote(dto.Descriptor, client, otel),
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"staytrack/infras/otel"
	"staytrack/internal/domains/dashboard/model/dto"
	"staytrack/internal/domains/dashboard/repository"
	"staytrack/shared/constant"
	"staytrack/shared/timezone"
	"staytrack/shared/validator"
)

type Dashboard interface {
	Stats(ctx context.Context, req dto.StatsRequest) (dto.StatsResponse, error)
}

type serviceImpl struct {
	repo repository.Dashboard
	otel otel.Otel
}

func New(repo repository.Dashboard, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Stats relays the server-computed statistics for the requested range.
func (s *serviceImpl) Stats(ctx context.Context, req dto.StatsRequest) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	stats, err := s.repo.Stats(ctx, req.Range)
	if err != nil {
		return res, err
	}

	res.FromModel(req.Range, stats, timezone.Now())

	return res, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"net/url"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/internal/domains/dashboard/model"
	"staytrack/shared/constant"
)

const pathStats = "/dashboard/stats"

type Dashboard interface {
	Stats(ctx context.Context, rangeName string) (model.Stats, error)
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Stats(ctx context.Context, rangeName string) (res model.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.RequestParamRange, rangeName)

	err = r.client.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   pathStats,
		Query:  url.Values{constant.RequestParamRange: []string{rangeName}},
	}, &res)

	return res, err
}

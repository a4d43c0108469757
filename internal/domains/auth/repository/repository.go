package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/internal/domains/auth/model/dto"
	"staytrack/shared/constant"
)

const (
	pathLogin    = "/login"
	pathRegister = "/register"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
}

type repositoryImpl struct {
	client api.Client
	otel   otel.Otel
}

func New(client api.Client, otel otel.Otel) Auth {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.client.Do(ctx, api.Request{
		Method:    http.MethodPost,
		Path:      pathLogin,
		Body:      req,
		Anonymous: true,
	}, &res)

	return res, err
}

func (r *repositoryImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.client.Do(ctx, api.Request{
		Method:    http.MethodPost,
		Path:      pathRegister,
		Body:      req,
		Accept:    []int{http.StatusOK, http.StatusCreated},
		Anonymous: true,
	}, nil)
}

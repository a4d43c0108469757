package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"staytrack/infras/credential"
	"staytrack/infras/otel"
	"staytrack/internal/domains/auth/model/dto"
	"staytrack/internal/domains/auth/repository"
	"staytrack/shared/cache"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"staytrack/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Session(ctx context.Context, token string) (dto.SessionResponse, error)
}

// Sessions is the per-operator console state a sign-in starts over.
type Sessions interface {
	Reset(ctx context.Context) error
}

type serviceImpl struct {
	repo     repository.Auth
	cache    cache.RedisCache
	sessions Sessions
	otel     otel.Otel
}

// New returns the auth service. cache and sessions may be nil.
func New(repo repository.Auth, cache cache.RedisCache, sessions Sessions, otel otel.Otel) Auth {
	return &serviceImpl{
		repo:     repo,
		cache:    cache,
		sessions: sessions,
		otel:     otel,
	}
}

// Login exchanges credentials for a token. Mirrored snapshots and the open
// sessions belong to the previous operator and are reset on success.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Login(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("login rejected")

		return res, err
	}

	if res.Token == "" {
		return res, failure.ServerError(http.StatusBadGateway, errors.New("login response carried no token"))
	}

	if s.cache != nil {
		if clearErr := s.cache.Clear(ctx); clearErr != nil {
			log.Warn().Err(clearErr).Msg("failed to clear mirrored snapshots")
		}
	}

	if s.sessions != nil {
		if resetErr := s.sessions.Reset(ctx); resetErr != nil {
			log.Warn().Err(resetErr).Msg("failed to reset sessions")
		}
	}

	log.Info().Str("username", req.Username).Msg("operator signed in")

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Register(ctx, req); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Str("role", req.Role).Msg("registration rejected")

		return err
	}

	return nil
}

// Session reads the token locally. Non-JWT tokens are reported as opaque.
func (s *serviceImpl) Session(_ context.Context, token string) (dto.SessionResponse, error) {
	var res dto.SessionResponse

	claims, err := credential.Inspect(token)
	if err != nil {
		if errors.Is(err, credential.ErrMalformed) {
			res.Opaque = true

			return res, nil
		}

		return res, failure.BadRequest(err)
	}

	res.FromClaims(claims, timezone.Now())

	return res, nil
}

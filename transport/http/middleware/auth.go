package middleware

import (
	"errors"
	"net/http"
	"staytrack/infras/credential"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"staytrack/shared/timezone"
	"staytrack/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(otel otel.Otel) Auth {
	return &authImpl{
		otel: otel,
	}
}

// Auth requires a bearer token and forwards it to the remote API through the request context.
// The signature is never checked here; a JWT whose exp has passed is turned away early and
// anything else is left to the remote API to judge.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		token, err := credential.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := credential.Inspect(token)

		switch {
		case errors.Is(err, credential.ErrMalformed):
			log.Debug().Msg("Opaque bearer token, deferring to the remote API")
		case err != nil:
			response.WithError(writer, failure.Unauthorized("Invalid token"))

			scope.TraceError(err)
			scope.End()

			return
		case claims.Expired(timezone.Now()):
			response.WithError(writer, failure.SessionExpiredError)

			scope.TraceError(failure.SessionExpiredError)
			scope.End()

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(credential.WithToken(ctx, token)))
	})
}

package middleware

import (
	"fmt"
	"net/http"
	"staytrack/config"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
			"http.request_id": chiMiddleware.GetReqID(ctx),
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": wrapped.Status(),
		}

		if rctx := chi.RouteContext(ctx); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if wrapped.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s answered %d", spanName, wrapped.Status()))
		}
	})
}

// CORS lets the browser front end call the console from another origin. Disabled it is a
// pass-through.
func (a *appMiddleware) CORS() func(http.Handler) http.Handler {
	corsConfig := a.config.App.CORS

	if !corsConfig.Enable {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	maxAge := corsConfig.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = int((5 * time.Minute).Seconds())
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   orDefault(corsConfig.AllowedOrigins, constant.Asterix),
		AllowedMethods:   orDefault(corsConfig.AllowedMethods, http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions),
		AllowedHeaders:   orDefault(corsConfig.AllowedHeaders, constant.RequestHeaderAuthorization, constant.RequestHeaderContentType, constant.RequestHeaderAccept),
		ExposedHeaders:   []string{constant.RequestHeaderRequestID},
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           maxAge,
	})
}

func orDefault(values []string, fallback ...string) []string {
	if len(values) == 0 {
		return fallback
	}

	return values
}

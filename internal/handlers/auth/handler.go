package auth

import (
	"net/http"
	"staytrack/infras/credential"
	"staytrack/infras/otel"
	"staytrack/internal/domains/auth/model/dto"
	"staytrack/internal/domains/auth/service"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"staytrack/shared/validator"
	"staytrack/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the public auth routes.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/auth/login", handler.Login)
	router.Post("/auth/register", handler.Register)
}

// ProtectedRouter mounts the routes that need a bearer token.
func (handler *Handler) ProtectedRouter(router chi.Router) {
	router.Get("/auth/session", handler.Session)
}

// Login handles operator sign in.
// @Summary Login
// @Description Exchange username and password for a bearer token issued by the hotel API.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	var req dto.LoginRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Register handles operator registration.
// @Summary Register
// @Description Register a new console operator.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	var req dto.RegisterRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Registration successful")
}

// Session describes the token the request was made with.
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 401 {object} response.Error
// @Router /v1/auth/session [get]
// @Security BearerAuth
func (handler *Handler) Session(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Session")
	defer scope.End()

	token, err := credential.FromContext().Token(ctx)
	if err != nil {
		err = failure.Unauthorized("Missing authorization header")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Session(ctx, token)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

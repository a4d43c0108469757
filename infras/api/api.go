package api

//go:generate go run go.uber.org/mock/mockgen -source=./api.go -destination=./mocks/api_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"staytrack/config"
	"staytrack/infras/credential"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	otelScopeName     = "api"
	otelAttrMethod    = "http.method"
	otelAttrPath      = "http.path"
	otelAttrStatus    = "http.status_code"
	otelAttrRequestID = "http.request_id"
	maxErrorBodyBytes = 1 << 20
	defaultTimeout    = 15
)

// Request describes one call against the remote hotel API.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Accept lists the status codes treated as success. Defaults to 200.
	Accept []int
	// Anonymous calls (login, register) are sent without a bearer token.
	Anonymous bool
}

type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

type clientImpl struct {
	baseURL     *url.URL
	http        *http.Client
	credentials credential.Source
	otel        otel.Otel
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// New builds the client from configuration. Requests are traced by otelhttp and
// bounded by API_TIMEOUT_SECONDS.
func New(cfg *config.Config, source credential.Source, ot otel.Otel) Client {
	timeout := cfg.API.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Timeout:   time.Duration(timeout) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithTracerProvider(ot.Provider())),
	}

	client, err := NewWithHTTPClient(cfg.API.BaseURL, httpClient, source, ot)
	if err != nil {
		log.Fatal().Err(err).Str("baseURL", cfg.API.BaseURL).Msg("Invalid API base URL")
	}

	log.Info().Str("baseURL", cfg.API.BaseURL).Int("timeoutSeconds", timeout).Msg("Remote API client ready")

	return client
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, source credential.Source, ot otel.Otel) (Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	return &clientImpl{
		baseURL:     parsed,
		http:        httpClient,
		credentials: source,
		otel:        ot,
	}, nil
}

// Do performs req and decodes a successful body into out (when non-nil).
// Failures come back as *failure.Failure: 401 unauthorized, 404 not found,
// other 4xx validation with the server message, 5xx and transport errors retryable.
func (c *clientImpl) Do(ctx context.Context, req Request, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+req.Method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requestID := uuid.NewString()
	scope.SetAttributes(map[string]any{
		otelAttrMethod:    req.Method,
		otelAttrPath:      req.Path,
		otelAttrRequestID: requestID,
	})

	httpReq, err := c.newRequest(ctx, req, requestID)
	if err != nil {
		return err
	}

	started := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Str("requestID", requestID).Msg("remote call failed")

		return failure.Network(err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(otelAttrStatus, resp.StatusCode)
	log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Str("requestID", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("remote call completed")

	accept := req.Accept
	if len(accept) == 0 {
		accept = []int{http.StatusOK}
	}

	if !slices.Contains(accept, resp.StatusCode) {
		return classify(req, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.Network(fmt.Errorf("failed to read response body: %w", err))
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err = json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode response body")

		return failure.ServerError(http.StatusBadGateway, fmt.Errorf("failed to decode response body: %w", err))
	}

	return nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	target := c.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	httpReq.Header.Set(constant.RequestHeaderRequestID, requestID)

	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if !req.Anonymous {
		token, err := c.credentials.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}

		httpReq.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)
	}

	return httpReq, nil
}

func classify(req Request, resp *http.Response) error {
	msg := serverMessage(resp)
	code := resp.StatusCode

	switch {
	case code == http.StatusUnauthorized:
		if msg == "" {
			msg = http.StatusText(code)
		}

		return failure.Unauthorized(msg)
	case code == http.StatusNotFound:
		if msg == "" {
			msg = strings.TrimPrefix(req.Path, "/") + " not found"
		}

		return failure.NotFound(msg)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		if msg == "" {
			msg = http.StatusText(code)
		}

		return failure.Validation(code, msg)
	default:
		return failure.ServerError(code, fmt.Errorf("%s %s answered %d: %s", req.Method, req.Path, code, msg))
	}
}

func serverMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return strings.TrimSpace(string(raw))
		}

		return ""
	}

	if body.Error != "" {
		return body.Error
	}

	return body.Message
}

package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyToken     contextKey = "token"
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID     = "id"
	RequestParamSearch = "search"
	RequestParamRange  = "range"
)

const (
	ResourceGuests   = "guests"
	ResourceRooms    = "rooms"
	ResourceBookings = "bookings"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
	OtelResourceScopeName   = "resource"

	OtelResourceAttributeKey = "resource"
	OtelSearchAttributeKey   = "search"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderAccept        = "Accept"
	RequestHeaderRequestID     = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
	BearerPrefix    = "Bearer "
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)

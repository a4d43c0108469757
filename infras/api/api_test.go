package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"staytrack/infras/api"
	"staytrack/infras/credential"
	otelMocks "staytrack/infras/otel/mocks"
	"staytrack/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type room struct {
	ID     string `json:"_id"`
	Number string `json:"room_number"`
}

func newClient(t *testing.T, handler http.HandlerFunc, source credential.Source) api.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewWithHTTPClient(server.URL, server.Client(), source, otelMocks.NewOtel())
	require.NoError(t, err)

	return client
}

func TestDo_AttachesHeadersAndDecodes(t *testing.T) {
	var captured *http.Request
	var body []byte

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		body, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"r1","room_number":"101"}`))
	}, credential.Static("tok"))

	var out room
	err := client.Do(context.Background(), api.Request{
		Method: http.MethodPost,
		Path:   "/rooms",
		Body:   map[string]string{"room_number": "101"},
		Accept: []int{http.StatusOK, http.StatusCreated},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, room{ID: "r1", Number: "101"}, out)
	assert.Equal(t, "/rooms", captured.URL.Path)
	assert.Equal(t, "Bearer tok", captured.Header.Get("Authorization"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"room_number":"101"}`, string(body))
}

func TestDo_EncodesQuery(t *testing.T) {
	var rawQuery string

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}, credential.Static("tok"))

	var out []room
	err := client.Do(context.Background(), api.Request{
		Method: http.MethodGet,
		Path:   "/guests",
		Query:  url.Values{"search": []string{"o'brien & co"}},
	}, &out)

	require.NoError(t, err)
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	assert.Equal(t, "o'brien & co", values.Get("search"))
}

func TestDo_AnonymousSkipsCredential(t *testing.T) {
	var auth string

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	}, credential.Static(""))

	var out struct {
		Token string `json:"token"`
	}
	err := client.Do(context.Background(), api.Request{Method: http.MethodPost, Path: "/login", Anonymous: true}, &out)

	require.NoError(t, err)
	assert.Empty(t, auth)
	assert.Equal(t, "abc", out.Token)
}

func TestDo_MissingCredentialNeverCallsServer(t *testing.T) {
	called := false

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}, credential.FromContext())

	err := client.Do(context.Background(), api.Request{Method: http.MethodGet, Path: "/rooms"}, nil)

	assert.ErrorIs(t, err, credential.ErrMissing)
	assert.False(t, called)
}

func TestDo_ClassifiesFailures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    int
		wantMessage string
		check       func(error) bool
	}{
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":"jwt expired"}`,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "jwt expired",
			check:       failure.IsUnauthorized,
		},
		{
			name:        "not found without body",
			status:      http.StatusNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "rooms/r1 not found",
			check:       failure.IsNotFound,
		},
		{
			name:        "validation keeps server message",
			status:      http.StatusBadRequest,
			body:        `{"error":"Room number already exists"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Room number already exists",
			check:       failure.IsValidation,
		},
		{
			name:        "validation falls back to message key",
			status:      http.StatusConflict,
			body:        `{"message":"Room is occupied"}`,
			wantCode:    http.StatusConflict,
			wantMessage: "Room is occupied",
			check:       failure.IsValidation,
		},
		{
			name:        "validation with plain text body",
			status:      http.StatusUnprocessableEntity,
			body:        `bad dates`,
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "bad dates",
			check:       failure.IsValidation,
		},
		{
			name:        "server error is generic",
			status:      http.StatusInternalServerError,
			body:        `{"error":"MongoError: connection pool closed"}`,
			wantCode:    http.StatusInternalServerError,
			wantMessage: failure.MessageServerError,
			check:       failure.IsRetryable,
		},
		{
			name:        "unexpected success code",
			status:      http.StatusAccepted,
			wantCode:    http.StatusInternalServerError,
			wantMessage: failure.MessageServerError,
			check:       failure.IsRetryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, credential.Static("tok"))

			err := client.Do(context.Background(), api.Request{Method: http.MethodPut, Path: "/rooms/r1"}, nil)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.EqualError(t, err, tt.wantMessage)
			assert.True(t, tt.check(err))
		})
	}
}

func TestDo_DecodeErrorIsServerError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"_id":`))
	}, credential.Static("tok"))

	var out room
	err := client.Do(context.Background(), api.Request{Method: http.MethodGet, Path: "/rooms/r1"}, &out)

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.True(t, failure.IsRetryable(err))

	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestDo_TransportErrorIsNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client, err := api.NewWithHTTPClient(server.URL, server.Client(), credential.Static("tok"), otelMocks.NewOtel())
	require.NoError(t, err)
	server.Close()

	err = client.Do(context.Background(), api.Request{Method: http.MethodDelete, Path: "/rooms/r1"}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	assert.EqualError(t, err, failure.MessageNetworkError)
}

func TestDo_NoContentSkipsDecode(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, credential.Static("tok"))

	var out room
	err := client.Do(context.Background(), api.Request{
		Method: http.MethodDelete,
		Path:   "/rooms/r1",
		Accept: []int{http.StatusOK, http.StatusNoContent},
	}, &out)

	assert.NoError(t, err)
	assert.Empty(t, out.ID)
}

func TestNewWithHTTPClient_RejectsRelativeURL(t *testing.T) {
	_, err := api.NewWithHTTPClient("/relative", http.DefaultClient, credential.Static("tok"), otelMocks.NewOtel())

	assert.Error(t, err)
}

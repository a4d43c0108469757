package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"staytrack/infras/api"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
	"staytrack/shared/resource"

	"github.com/rs/zerolog/log"
)

// Remote is the gateway for one REST collection. Every call is at-most-once.
type Remote[T any, D any] struct {
	client     api.Client
	otel       otel.Otel
	descriptor resource.Descriptor[T, D]
}

func NewRemote[T any, D any](descriptor resource.Descriptor[T, D], client api.Client, otl otel.Otel) Remote[T, D] {
	return Remote[T, D]{
		client:     client,
		otel:       otl,
		descriptor: descriptor,
	}
}

func (repo *Remote[T, D]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.descriptor.Name, op)
}

func (repo *Remote[T, D]) itemPath(id string) string {
	return "/" + repo.descriptor.Name + "/" + url.PathEscape(id)
}

// List fetches the collection filtered by term. The server may answer with a
// bare array or with the array wrapped under the resource key.
func (repo *Remote[T, D]) List(ctx context.Context, term string) (res []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("List"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelResourceAttributeKey: repo.descriptor.Name,
		constant.OtelSearchAttributeKey:   term,
	})

	var raw json.RawMessage

	err = repo.client.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "/" + repo.descriptor.Name,
		Query:  url.Values{constant.RequestParamSearch: []string{term}},
	}, &raw)
	if err != nil {
		return nil, err
	}

	res, err = normalise[T](raw, repo.descriptor.EnvelopeKey())
	if err != nil {
		log.Error().Err(err).Str("resource", repo.descriptor.Name).Msg("unexpected list response shape")

		return nil, failure.ServerError(http.StatusBadGateway, err)
	}

	scope.SetAttribute("result.count", len(res))

	return res, nil
}

func normalise[T any](raw json.RawMessage, envelope string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	items := []T{}

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return items, nil
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode list: %w", err)
		}
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode list envelope: %w", err)
		}

		inner, ok := wrapped[envelope]
		if !ok {
			return nil, fmt.Errorf("list envelope has no %q key", envelope)
		}

		return normalise[T](inner, envelope)
	default:
		return nil, fmt.Errorf("list response is neither an array nor an object")
	}

	return items, nil
}

func (repo *Remote[T, D]) Create(ctx context.Context, draft D) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Create"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelResourceAttributeKey, repo.descriptor.Name)

	err = repo.client.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "/" + repo.descriptor.Name,
		Body:   draft,
		Accept: []int{http.StatusOK, http.StatusCreated},
	}, &res)
	if err != nil {
		return res, err
	}

	if repo.descriptor.ID(res) == "" {
		return res, failure.ServerError(http.StatusBadGateway, fmt.Errorf("created %s has no identifier", repo.descriptor.Name))
	}

	return res, nil
}

func (repo *Remote[T, D]) Update(ctx context.Context, id string, draft D) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelResourceAttributeKey: repo.descriptor.Name,
		constant.RequestParamID:           id,
	})

	err = repo.client.Do(ctx, api.Request{
		Method: http.MethodPut,
		Path:   repo.itemPath(id),
		Body:   draft,
	}, &res)
	if err != nil {
		return res, err
	}

	if repo.descriptor.ID(res) != id {
		return res, failure.ServerError(http.StatusBadGateway, fmt.Errorf("updated %s came back as %q, want %q", repo.descriptor.Name, repo.descriptor.ID(res), id))
	}

	return res, nil
}

func (repo *Remote[T, D]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelResourceAttributeKey: repo.descriptor.Name,
		constant.RequestParamID:           id,
	})

	return repo.client.Do(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   repo.itemPath(id),
		Accept: []int{http.StatusOK, http.StatusNoContent},
	}, nil)
}

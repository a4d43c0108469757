// Package console exposes one resource session over HTTP. Every route answers with the full
// view of the resource so the browser never has to merge partial state.
package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"staytrack/shared/dto"
	"staytrack/shared/failure"
	"staytrack/shared/resource"
	"staytrack/shared/validator"
	"staytrack/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxDraftBytes = 1 << 20

type Handler[T any, D any] struct {
	name    string
	manager resource.Manager[T, D]
	otel    otel.Otel
}

func New[T any, D any](name string, manager resource.Manager[T, D], otel otel.Otel) Handler[T, D] {
	return Handler[T, D]{
		name:    name,
		manager: manager,
		otel:    otel,
	}
}

// Routes mounts the resource under /{name}.
func (handler *Handler[T, D]) Routes(router chi.Router) {
	router.Route("/"+handler.name, func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetView)
		routerGroup.Post("/search", handler.Search)
		routerGroup.Post("/reload", handler.Reload)

		routerGroup.Get("/draft", handler.GetDraft)
		routerGroup.Post("/draft", handler.OpenDraft)
		routerGroup.Patch("/draft", handler.PatchDraft)
		routerGroup.Delete("/draft", handler.CancelDraft)
		routerGroup.Post("/draft/submit", handler.SubmitDraft)

		routerGroup.Post("/delete/confirm", handler.ConfirmDelete)
		routerGroup.Delete("/delete", handler.CancelDelete)
		routerGroup.Post("/{id}/delete", handler.RequestDelete)
	})
}

func (handler *Handler[T, D]) scope(request *http.Request, op string) (*http.Request, otel.Scope) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+handler.name+"."+op)
	scope.SetAttribute(constant.OtelResourceAttributeKey, handler.name)

	return request.WithContext(ctx), scope
}

func (handler *Handler[T, D]) fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Str(constant.OtelResourceAttributeKey, handler.name).Msg(msg)

	response.WithError(writer, err)
}

func (handler *Handler[T, D]) view(writer http.ResponseWriter, code int) {
	response.WithJSON(writer, code, handler.manager.View())
}

// GetView renders the collection, draft and pending deletion of the resource.
// @Summary Resource state
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Router /v1/{resource} [get]
// @Security BearerAuth
func (handler *Handler[T, D]) GetView(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "GetView")
	defer scope.End()

	handler.view(writer, http.StatusOK)
}

// Search replaces the search term and loads the matching collection.
// @Summary Search the collection
// @Tags Console
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/{resource}/search [post]
// @Security BearerAuth
func (handler *Handler[T, D]) Search(writer http.ResponseWriter, request *http.Request) {
	request, scope := handler.scope(request, "Search")
	defer scope.End()

	var req dto.SearchRequest
	if err := decodeOptional(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to decode search request")

		return
	}

	req.Normalize()
	scope.SetAttribute(constant.OtelSearchAttributeKey, req.Term)

	if err := handler.manager.Search(request.Context(), req.Term); err != nil {
		handler.fail(writer, scope, err, "failed to search")

		return
	}

	handler.view(writer, http.StatusOK)
}

// Reload repeats the last load with the current term.
// @Summary Reload the collection
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/{resource}/reload [post]
// @Security BearerAuth
func (handler *Handler[T, D]) Reload(writer http.ResponseWriter, request *http.Request) {
	request, scope := handler.scope(request, "Reload")
	defer scope.End()

	if err := handler.manager.Reload(request.Context()); err != nil {
		handler.fail(writer, scope, err, "failed to reload")

		return
	}

	handler.view(writer, http.StatusOK)
}

// GetDraft renders the draft buffer only.
func (handler *Handler[T, D]) GetDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "GetDraft")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.manager.View().Form)
}

// OpenDraft opens a create draft, or an edit draft when an id is given.
// @Summary Open the draft
// @Tags Console
// @Accept json
// @Produce json
// @Param request body dto.DraftRequest false "Entity to edit"
// @Success 200 {object} response.Data[any]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/draft [post]
// @Security BearerAuth
func (handler *Handler[T, D]) OpenDraft(writer http.ResponseWriter, request *http.Request) {
	request, scope := handler.scope(request, "OpenDraft")
	defer scope.End()

	var req dto.DraftRequest
	if err := decodeOptional(request.Body, &req); err != nil {
		handler.fail(writer, scope, err, "failed to decode draft request")

		return
	}

	var err error
	if req.Editing() {
		err = handler.manager.BeginEdit(req.ID)
	} else {
		err = handler.manager.BeginCreate()
	}

	if err != nil {
		handler.fail(writer, scope, err, "failed to open draft")

		return
	}

	handler.view(writer, http.StatusOK)
}

// PatchDraft merges the body into the draft. Fields not present keep their value.
// @Summary Edit the draft
// @Tags Console
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/draft [patch]
// @Security BearerAuth
func (handler *Handler[T, D]) PatchDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "PatchDraft")
	defer scope.End()

	raw, err := io.ReadAll(io.LimitReader(request.Body, maxDraftBytes))
	if err != nil {
		handler.fail(writer, scope, failure.BadRequest(fmt.Errorf("failed to read draft: %w", err)), "failed to read draft")

		return
	}

	if err := handler.manager.PatchDraft(raw); err != nil {
		handler.fail(writer, scope, err, "failed to patch draft")

		return
	}

	handler.view(writer, http.StatusOK)
}

// CancelDraft discards the draft without saving.
// @Summary Discard the draft
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/draft [delete]
// @Security BearerAuth
func (handler *Handler[T, D]) CancelDraft(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "CancelDraft")
	defer scope.End()

	if err := handler.manager.CancelDraft(); err != nil {
		handler.fail(writer, scope, err, "failed to cancel draft")

		return
	}

	handler.view(writer, http.StatusOK)
}

// SubmitDraft sends the draft to the remote API. A rejected draft stays open with the
// error attached.
// @Summary Submit the draft
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Success 201 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/draft/submit [post]
// @Security BearerAuth
func (handler *Handler[T, D]) SubmitDraft(writer http.ResponseWriter, request *http.Request) {
	request, scope := handler.scope(request, "SubmitDraft")
	defer scope.End()

	creating := handler.manager.View().Form.Mode == resource.ModeCreating

	if _, err := handler.manager.Submit(request.Context()); err != nil {
		handler.fail(writer, scope, err, "failed to submit draft")

		return
	}

	code := http.StatusOK
	if creating {
		code = http.StatusCreated
	}

	handler.view(writer, code)
}

// RequestDelete arms the deletion of one entity. Nothing is sent until it is confirmed.
// @Summary Request deletion
// @Tags Console
// @Produce json
// @Param id path string true "Entity id"
// @Success 200 {object} response.Data[any]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/{id}/delete [post]
// @Security BearerAuth
func (handler *Handler[T, D]) RequestDelete(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "RequestDelete")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.manager.RequestDelete(id); err != nil {
		handler.fail(writer, scope, err, "failed to request deletion")

		return
	}

	handler.view(writer, http.StatusOK)
}

// ConfirmDelete deletes the armed entity.
// @Summary Confirm deletion
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/delete/confirm [post]
// @Security BearerAuth
func (handler *Handler[T, D]) ConfirmDelete(writer http.ResponseWriter, request *http.Request) {
	request, scope := handler.scope(request, "ConfirmDelete")
	defer scope.End()

	if err := handler.manager.ConfirmDelete(request.Context()); err != nil {
		handler.fail(writer, scope, err, "failed to delete")

		return
	}

	handler.view(writer, http.StatusOK)
}

// CancelDelete drops the armed deletion.
// @Summary Cancel deletion
// @Tags Console
// @Produce json
// @Success 200 {object} response.Data[any]
// @Failure 409 {object} response.Error
// @Router /v1/{resource}/delete [delete]
// @Security BearerAuth
func (handler *Handler[T, D]) CancelDelete(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.scope(request, "CancelDelete")
	defer scope.End()

	if err := handler.manager.CancelDelete(); err != nil {
		handler.fail(writer, scope, err, "failed to cancel deletion")

		return
	}

	handler.view(writer, http.StatusOK)
}

// decodeOptional validates a JSON body that callers may leave out entirely.
func decodeOptional[R any](body io.Reader, req *R) error {
	raw, err := io.ReadAll(io.LimitReader(body, maxDraftBytes))
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to read request body: %w", err))
	}

	if len(raw) == 0 {
		return validator.ValidateStruct(req)
	}

	if !json.Valid(raw) {
		return failure.BadRequest(errors.New("request body is not valid JSON"))
	}

	return validator.Validate(bytes.NewReader(raw), req)
}

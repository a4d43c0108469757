package resource

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"staytrack/infras/otel"
	"staytrack/shared/constant"
	"staytrack/shared/failure"
)

// Gateway is the remote side of one resource.
type Gateway[T any, D any] interface {
	Lister[T]
	Writer[T, D]
	Deleter
}

// View is everything the console renders for one resource.
type View[T any, D any] struct {
	Collection State[T]     `json:"collection"`
	Form       FormState[D] `json:"form"`
	Delete     GateState    `json:"delete"`
}

// Manager is the event surface the console drives for one resource.
type Manager[T any, D any] interface {
	View() View[T, D]
	Search(ctx context.Context, term string) error
	Reload(ctx context.Context) error
	Restore(ctx context.Context) error
	BeginCreate() error
	BeginEdit(id string) error
	PatchDraft(raw json.RawMessage) error
	Submit(ctx context.Context) (T, error)
	CancelDraft() error
	RequestDelete(id string) error
	ConfirmDelete(ctx context.Context) error
	CancelDelete() error
	Reset(ctx context.Context) error
	Close()
}

// Session bundles the store, form and delete gate of one resource.
type Session[T any, D any] struct {
	descriptor Descriptor[T, D]
	otel       otel.Otel

	Store *Store[T]
	Form  *Form[T, D]
	Gate  *DeleteGate[T]
}

// NewSession wires the components for one resource. mirror may be nil.
func NewSession[T any, D any](descriptor Descriptor[T, D], gateway Gateway[T, D], mirror Mirror, ot otel.Otel) *Session[T, D] {
	store := NewStore(descriptor.Name, gateway, descriptor.ID, mirror)

	return &Session[T, D]{
		descriptor: descriptor,
		otel:       ot,
		Store:      store,
		Form:       NewForm(descriptor, store, gateway),
		Gate:       NewDeleteGate(descriptor.Name, store, gateway),
	}
}

func (s *Session[T, D]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelResourceScopeName, constant.OtelResourceScopeName+"."+s.descriptor.Name+"."+op)
	scope.SetAttribute(constant.OtelResourceAttributeKey, s.descriptor.Name)

	return ctx, scope
}

func (s *Session[T, D]) View() View[T, D] {
	return View[T, D]{
		Collection: s.Store.State(),
		Form:       s.Form.State(),
		Delete:     s.Gate.State(),
	}
}

func (s *Session[T, D]) Search(ctx context.Context, term string) (err error) {
	ctx, scope := s.scope(ctx, "Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelSearchAttributeKey, term)

	if err = s.writeInFlight(); err != nil {
		return err
	}

	_, err = s.Store.Load(ctx, term)

	return err
}

func (s *Session[T, D]) Reload(ctx context.Context) (err error) {
	ctx, scope := s.scope(ctx, "Reload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.writeInFlight(); err != nil {
		return err
	}

	_, err = s.Store.Reload(ctx)

	return err
}

// writeInFlight refuses a new load while a write is pending. A list answered
// before the write commits could otherwise replace the snapshot after the
// write was applied and drop the confirmed change.
func (s *Session[T, D]) writeInFlight() error {
	if s.Form.State().Status == FormSubmitting {
		return failure.SubmissionInFlightError
	}

	if s.Gate.State().Status == GateDeleting {
		return failure.DeletionInFlightError
	}

	return nil
}

func (s *Session[T, D]) Restore(ctx context.Context) error {
	_, err := s.Store.Restore(ctx)

	return err
}

func (s *Session[T, D]) BeginCreate() error {
	return s.Form.BeginCreate()
}

func (s *Session[T, D]) BeginEdit(id string) error {
	return s.Form.BeginEdit(id)
}

func (s *Session[T, D]) PatchDraft(raw json.RawMessage) error {
	return s.Form.Patch(raw)
}

func (s *Session[T, D]) Submit(ctx context.Context) (res T, err error) {
	ctx, scope := s.scope(ctx, "Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.Form.Submit(ctx)
}

func (s *Session[T, D]) CancelDraft() error {
	return s.Form.Cancel()
}

func (s *Session[T, D]) RequestDelete(id string) error {
	return s.Gate.Request(id)
}

func (s *Session[T, D]) ConfirmDelete(ctx context.Context) (err error) {
	ctx, scope := s.scope(ctx, "ConfirmDelete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.Gate.Confirm(ctx)
}

func (s *Session[T, D]) CancelDelete() error {
	return s.Gate.Cancel()
}

// Reset returns the session to its initial state for a new operator: the draft
// is discarded, an armed delete is cancelled and the snapshot is emptied. It is
// refused while a write is in flight.
func (s *Session[T, D]) Reset(ctx context.Context) error {
	if err := s.writeInFlight(); err != nil {
		return err
	}

	if err := s.Form.Cancel(); err != nil {
		return err
	}

	if err := s.Gate.Cancel(); err != nil {
		return err
	}

	s.Store.Reset(ctx)

	return nil
}

// Close detaches the store; writes still in flight complete without effect.
func (s *Session[T, D]) Close() {
	s.Store.Close()
}

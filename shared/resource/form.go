package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"staytrack/shared/failure"
	"staytrack/shared/logger"
	"staytrack/shared/validator"
	"sync"

	"github.com/rs/zerolog"
)

type Mode string

const (
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

type FormStatus string

const (
	FormIdle       FormStatus = "idle"
	FormDrafting   FormStatus = "drafting"
	FormSubmitting FormStatus = "submitting"
)

var errNoDraft = failure.Conflict("No draft is open")

// Writer is the mutating half of a gateway used by the form.
type Writer[T any, D any] interface {
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, draft D) (T, error)
}

type FormState[D any] struct {
	Status FormStatus `json:"status"`
	Mode   Mode       `json:"mode,omitempty"`
	ID     string     `json:"id,omitempty"`
	Draft  *D         `json:"draft,omitempty"`
	Error  string     `json:"error,omitempty"`
	Code   int        `json:"code,omitempty"`
}

// Form owns the single draft buffer of a resource.
type Form[T any, D any] struct {
	mu sync.Mutex

	descriptor Descriptor[T, D]
	store      *Store[T]
	writer     Writer[T, D]
	log        zerolog.Logger

	status FormStatus
	mode   Mode
	id     string
	draft  D
	err    error
}

func NewForm[T any, D any](descriptor Descriptor[T, D], store *Store[T], writer Writer[T, D]) *Form[T, D] {
	return &Form[T, D]{
		descriptor: descriptor,
		store:      store,
		writer:     writer,
		log:        logger.Resource(descriptor.Name),
		status:     FormIdle,
	}
}

// BeginCreate opens a fresh draft, discarding any previous one.
func (f *Form[T, D]) BeginCreate() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == FormSubmitting {
		return failure.SubmissionInFlightError
	}

	f.open(ModeCreating, "", f.descriptor.Defaults())

	return nil
}

// BeginEdit copies the snapshot element with id into the draft.
func (f *Form[T, D]) BeginEdit(id string) error {
	entity, ok := f.store.Find(id)
	if !ok {
		return failure.NotFound(fmt.Sprintf("%s %s is not in the collection", f.descriptor.Name, id))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == FormSubmitting {
		return failure.SubmissionInFlightError
	}

	f.open(ModeEditing, id, f.descriptor.ToDraft(entity))

	return nil
}

func (f *Form[T, D]) open(mode Mode, id string, draft D) {
	f.status = FormDrafting
	f.mode = mode
	f.id = id
	f.draft = draft
	f.err = nil
}

func (f *Form[T, D]) reset() {
	var zero D

	f.status = FormIdle
	f.mode = ""
	f.id = ""
	f.draft = zero
	f.err = nil
}

// Update mutates the draft in place.
func (f *Form[T, D]) Update(mutate func(draft *D)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return err
	}

	mutate(&f.draft)

	return nil
}

// Patch merges a partial JSON object into the draft. The draft is untouched
// when the payload does not decode.
func (f *Form[T, D]) Patch(raw []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return err
	}

	next := f.draft
	if err := json.Unmarshal(raw, &next); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode draft: %w", err))
	}

	f.draft = next

	return nil
}

func (f *Form[T, D]) editable() error {
	switch f.status {
	case FormSubmitting:
		return failure.SubmissionInFlightError
	case FormIdle:
		return errNoDraft
	default:
		return nil
	}
}

// Submit validates the draft and sends it as a create or an update depending on
// the mode. On failure the form stays in Drafting with the draft unchanged.
func (f *Form[T, D]) Submit(ctx context.Context) (T, error) {
	var zero T

	f.mu.Lock()

	if err := f.editable(); err != nil {
		f.mu.Unlock()

		return zero, err
	}

	draft, mode, id := f.draft, f.mode, f.id

	if err := validator.ValidateStruct(&draft); err != nil {
		f.err = err
		f.mu.Unlock()

		return zero, err
	}

	f.status = FormSubmitting
	f.err = nil
	f.mu.Unlock()

	var (
		entity T
		err    error
	)

	if mode == ModeCreating {
		entity, err = f.writer.Create(ctx, draft)
	} else {
		entity, err = f.writer.Update(ctx, id, draft)
	}

	f.mu.Lock()

	if err != nil {
		f.status = FormDrafting
		f.err = err
		f.mu.Unlock()

		f.log.Warn().Err(err).Str("mode", string(mode)).Str("id", id).Msg("submit failed")

		if mode == ModeEditing && failure.IsNotFound(err) {
			if _, reloadErr := f.store.Reload(ctx); reloadErr != nil {
				f.log.Warn().Err(reloadErr).Msg("reload after missing entity failed")
			}
		}

		return zero, err
	}

	f.reset()
	f.mu.Unlock()

	if mode == ModeCreating {
		f.store.ApplyCreated(entity)
	} else if err := f.store.ApplyUpdated(entity); err != nil {
		f.log.Warn().Err(err).Str("id", id).Msg("updated entity is no longer in the snapshot")
	}

	return entity, nil
}

// Cancel discards the draft. It is refused while a submission is in flight.
func (f *Form[T, D]) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == FormSubmitting {
		return failure.SubmissionInFlightError
	}

	f.reset()

	return nil
}

func (f *Form[T, D]) State() FormState[D] {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := FormState[D]{
		Status: f.status,
		Mode:   f.mode,
		ID:     f.id,
	}

	if f.status != FormIdle {
		draft := f.draft
		state.Draft = &draft
	}

	if f.err != nil {
		state.Error = f.err.Error()
		state.Code = failure.GetCode(f.err)
	}

	return state
}

package resource

import (
	"context"
	"fmt"
	"staytrack/shared/failure"
	"staytrack/shared/logger"
	"sync"

	"github.com/rs/zerolog"
)

type GateStatus string

const (
	GateNone     GateStatus = "none"
	GateArmed    GateStatus = "armed"
	GateDeleting GateStatus = "deleting"
)

var errNotArmed = failure.Conflict("No deletion is awaiting confirmation")

type Deleter interface {
	Delete(ctx context.Context, id string) error
}

type GateState struct {
	Status GateStatus `json:"status"`
	ID     string     `json:"id,omitempty"`
	Error  string     `json:"error,omitempty"`
	Code   int        `json:"code,omitempty"`
}

// DeleteGate requires an explicit confirmation before a delete reaches the server.
type DeleteGate[T any] struct {
	mu sync.Mutex

	name    string
	store   *Store[T]
	deleter Deleter
	log     zerolog.Logger

	status GateStatus
	id     string
	err    error
}

func NewDeleteGate[T any](name string, store *Store[T], deleter Deleter) *DeleteGate[T] {
	return &DeleteGate[T]{
		name:    name,
		store:   store,
		deleter: deleter,
		log:     logger.Resource(name),
		status:  GateNone,
	}
}

// Request arms the gate for id, replacing any armed intent.
func (g *DeleteGate[T]) Request(id string) error {
	if _, ok := g.store.Find(id); !ok {
		return failure.NotFound(fmt.Sprintf("%s %s is not in the collection", g.name, id))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == GateDeleting {
		return failure.DeletionInFlightError
	}

	g.status = GateArmed
	g.id = id
	g.err = nil

	return nil
}

// Confirm deletes the armed entity. The snapshot only changes after the server
// confirms; on failure the gate returns to Armed.
func (g *DeleteGate[T]) Confirm(ctx context.Context) error {
	g.mu.Lock()

	switch g.status {
	case GateDeleting:
		g.mu.Unlock()

		return failure.DeletionInFlightError
	case GateNone:
		g.mu.Unlock()

		return errNotArmed
	}

	id := g.id
	g.status = GateDeleting
	g.err = nil
	g.mu.Unlock()

	err := g.deleter.Delete(ctx, id)

	g.mu.Lock()

	if err != nil {
		g.status = GateArmed
		g.err = err
		g.mu.Unlock()

		g.log.Warn().Err(err).Str("id", id).Msg("delete failed")

		if failure.IsNotFound(err) {
			if _, reloadErr := g.store.Reload(ctx); reloadErr != nil {
				g.log.Warn().Err(reloadErr).Msg("reload after missing entity failed")
			}
		}

		return err
	}

	g.status = GateNone
	g.id = ""
	g.err = nil
	g.mu.Unlock()

	g.store.ApplyDeleted(id)

	return nil
}

// Cancel disarms the gate without a network call.
func (g *DeleteGate[T]) Cancel() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == GateDeleting {
		return failure.DeletionInFlightError
	}

	g.status = GateNone
	g.id = ""
	g.err = nil

	return nil
}

func (g *DeleteGate[T]) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GateState{Status: g.status, ID: g.id}

	if g.err != nil {
		state.Error = g.err.Error()
		state.Code = failure.GetCode(g.err)
	}

	return state
}

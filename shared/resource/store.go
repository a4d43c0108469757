package resource

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"staytrack/shared/cache"
	"staytrack/shared/failure"
	"staytrack/shared/logger"
	"sync"

	"github.com/rs/zerolog"
)

var ErrClosed = errors.New("resource store is closed")

// Lister is the read half of a gateway.
type Lister[T any] interface {
	List(ctx context.Context, term string) ([]T, error)
}

// Mirror persists the last accepted unfiltered snapshot for warm starts.
type Mirror interface {
	Save(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// State is a copy of the store suitable for rendering.
type State[T any] struct {
	Items     []T    `json:"items"`
	Term      string `json:"term"`
	Loading   bool   `json:"loading"`
	Error     string `json:"error,omitempty"`
	Code      int    `json:"code,omitempty"`
	Retryable bool   `json:"retryable"`
	Seq       uint64 `json:"-"`
}

// Store holds the collection snapshot for one resource. Loads are tagged with a
// sequence number and only the latest issued one may replace the snapshot.
type Store[T any] struct {
	mu sync.Mutex

	name   string
	lister Lister[T]
	id     func(T) string
	mirror Mirror
	log    zerolog.Logger

	items    []T
	term     string
	issued   uint64
	settled  uint64
	accepted uint64
	err      error
	closed   bool

	// mirror bookkeeping: version counts snapshot changes the mirror must follow,
	// mirrored is the last version written. Only one goroutine writes at a time.
	unfiltered bool
	version    uint64
	mirrored   uint64
	syncing    bool
}

// NewStore creates an empty store. mirror may be nil.
func NewStore[T any](name string, lister Lister[T], id func(T) string, mirror Mirror) *Store[T] {
	return &Store[T]{
		name:   name,
		lister: lister,
		id:     id,
		mirror: mirror,
		log:    logger.Resource(name),
		items:  []T{},
	}
}

// Load lists the collection for term. A result that resolves after a newer load
// was issued is dropped and the current snapshot is returned instead.
func (s *Store[T]) Load(ctx context.Context, term string) ([]T, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil, ErrClosed
	}

	s.issued++
	seq := s.issued
	s.term = term
	s.mu.Unlock()

	items, err := s.lister.List(ctx, term)

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		s.log.Debug().Uint64("seq", seq).Msg("load resolved after close, discarded")

		return nil, ErrClosed
	}

	if seq != s.issued {
		current := slices.Clone(s.items)
		latest := s.issued
		s.mu.Unlock()

		s.log.Debug().Uint64("seq", seq).Uint64("latest", latest).Str("term", term).Msg("stale load discarded")

		return current, nil
	}

	s.settled = seq

	if err != nil {
		s.err = err
		current := slices.Clone(s.items)
		s.mu.Unlock()

		s.log.Warn().Err(err).Uint64("seq", seq).Str("term", term).Msg("load failed, keeping previous snapshot")

		return current, err
	}

	if items == nil {
		items = []T{}
	}

	s.items = slices.Clone(items)
	s.err = nil
	s.accepted = seq
	s.unfiltered = term == ""

	if s.unfiltered {
		s.version++
	}
	s.mu.Unlock()

	s.log.Debug().Uint64("seq", seq).Str("term", term).Int("count", len(items)).Msg("snapshot replaced")

	s.sync(ctx)

	return slices.Clone(items), nil
}

// Reload repeats the load for the current term.
func (s *Store[T]) Reload(ctx context.Context) ([]T, error) {
	return s.Load(ctx, s.Term())
}

// sync brings the mirror up to the current snapshot version. A call made while
// another goroutine is writing returns at once; the writer loops until the
// newest version is stored, so an older snapshot never lands last.
func (s *Store[T]) sync(ctx context.Context) {
	if s.mirror == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()

		return
	}

	s.syncing = true

	for !s.closed && s.version != s.mirrored {
		version, unfiltered, items := s.version, s.unfiltered, slices.Clone(s.items)
		s.mu.Unlock()

		var err error
		if unfiltered {
			err = s.mirror.Save(ctx, s.name, items)
		} else {
			// a patched search result cannot stand in for the full collection
			err = s.mirror.Delete(ctx, s.name)
		}

		if err != nil {
			s.log.Warn().Err(err).Uint64("version", version).Msg("failed to mirror snapshot")
		}

		s.mu.Lock()
		s.mirrored = version
	}

	s.syncing = false
	s.mu.Unlock()
}

// Reset empties the snapshot and drops any load still in flight. The mirror
// key is removed as well, after any save that was already running.
func (s *Store[T]) Reset(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}

	s.issued++
	s.settled = s.issued
	s.items = []T{}
	s.term = ""
	s.err = nil
	s.unfiltered = false
	s.patched()
	s.mu.Unlock()

	s.log.Debug().Msg("snapshot reset")

	s.sync(ctx)
}

// patched records a local change of the snapshot. Callers hold s.mu.
func (s *Store[T]) patched() {
	s.version++
}

// Restore seeds the snapshot from the mirror. It does nothing once a load has
// been accepted, and reports false when there was nothing to restore.
func (s *Store[T]) Restore(ctx context.Context) (bool, error) {
	if s.mirror == nil {
		return false, nil
	}

	var items []T
	if err := s.mirror.Get(ctx, s.name, &items); err != nil {
		if cache.IsMiss(err) {
			return false, nil
		}

		return false, fmt.Errorf("failed to restore %s snapshot: %w", s.name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.accepted > 0 {
		return false, nil
	}

	if items == nil {
		items = []T{}
	}

	s.items = items
	s.unfiltered = true
	s.log.Info().Int("count", len(items)).Msg("snapshot restored from mirror")

	return true, nil
}

// ApplyCreated appends a server-confirmed entity.
func (s *Store[T]) ApplyCreated(entity T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}

	s.items = append(s.items, entity)
	s.patched()
	s.mu.Unlock()

	s.sync(context.Background())
}

// ApplyUpdated replaces the element with the same identifier, keeping its position.
func (s *Store[T]) ApplyUpdated(entity T) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}

	id := s.id(entity)

	idx := slices.IndexFunc(s.items, func(item T) bool { return s.id(item) == id })
	if idx < 0 {
		s.mu.Unlock()

		return failure.NotFound(fmt.Sprintf("%s %s is not in the collection", s.name, id))
	}

	s.items[idx] = entity
	s.patched()
	s.mu.Unlock()

	s.sync(context.Background())

	return nil
}

// ApplyDeleted removes the element with id, if present.
func (s *Store[T]) ApplyDeleted(id string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(item T) bool { return s.id(item) == id })

	if len(s.items) == before {
		s.mu.Unlock()

		return
	}

	s.patched()
	s.mu.Unlock()

	s.sync(context.Background())
}

// Find returns the snapshot element with id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func (s *Store[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store[T]) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.term
}

func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State[T]{
		Items:   slices.Clone(s.items),
		Term:    s.term,
		Loading: s.settled != s.issued,
		Seq:     s.accepted,
	}

	if s.err != nil {
		state.Error = s.err.Error()
		state.Code = failure.GetCode(s.err)
		state.Retryable = failure.IsRetryable(s.err)
	}

	return state
}

// Close detaches the store. Results and patches arriving afterwards are dropped.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

package di

import (
	"context"
	"errors"
	bookingService "staytrack/internal/domains/booking/service"
	guestService "staytrack/internal/domains/guest/service"
	roomService "staytrack/internal/domains/room/service"
	"staytrack/transport/http"

	"github.com/rs/zerolog/log"
)

// Session is the lifecycle part of a resource session the process manages.
type Session interface {
	Restore(ctx context.Context) error
	Reset(ctx context.Context) error
	Close()
}

type Sessions []Session

func NewSessions(guest guestService.Guest, room roomService.Room, booking bookingService.Booking) Sessions {
	return Sessions{guest, room, booking}
}

// Restore warm-starts every session from the snapshot mirror. A failing mirror only costs the
// warm start, the first load still fetches from the API.
func (s Sessions) Restore(ctx context.Context) {
	for _, session := range s {
		if err := session.Restore(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to restore snapshot")
		}
	}
}

// Reset hands every session to a new operator. Sessions with a write in flight
// are left as they are and reported in the joined error.
func (s Sessions) Reset(ctx context.Context) error {
	var errs []error

	for _, session := range s {
		if err := session.Reset(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s Sessions) Close() {
	for _, session := range s {
		session.Close()
	}
}

type Console struct {
	HTTP     *http.HTTP
	Sessions Sessions
}

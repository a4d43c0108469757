package resource_test

import (
	"context"
	"fmt"
	"slices"
	"staytrack/shared/failure"
	"staytrack/shared/resource"
	"strings"
	"sync"
)

type guest struct {
	ID        string `json:"_id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDType    string `json:"idType"`
	IDNumber  string `json:"idNumber"`
}

type guestDraft struct {
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName"  validate:"required,notblank"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,notblank"`
	IDType    string `json:"idType"    validate:"required,oneof=passport driving_license national_id"`
	IDNumber  string `json:"idNumber"  validate:"required,notblank"`
}

var guestDescriptor = resource.Descriptor[guest, guestDraft]{
	Name:     "guests",
	ID:       func(g guest) string { return g.ID },
	Defaults: func() guestDraft { return guestDraft{IDType: "passport"} },
	ToDraft: func(g guest) guestDraft {
		return guestDraft{
			FirstName: g.FirstName,
			LastName:  g.LastName,
			Email:     g.Email,
			Phone:     g.Phone,
			IDType:    g.IDType,
			IDNumber:  g.IDNumber,
		}
	},
}

func annDraft() guestDraft {
	return guestDraft{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@x.com",
		Phone:     "555",
		IDType:    "passport",
		IDNumber:  "P1",
	}
}

func fromDraft(id string, d guestDraft) guest {
	return guest{
		ID:        id,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		IDType:    d.IDType,
		IDNumber:  d.IDNumber,
	}
}

// fakeRemote behaves like the hotel API for a single collection.
type fakeRemote struct {
	mu    sync.Mutex
	rows  []guest
	next  int
	lists int
}

func newFakeRemote(rows ...guest) *fakeRemote {
	return &fakeRemote{rows: rows, next: len(rows)}
}

func (f *fakeRemote) List(_ context.Context, term string) ([]guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lists++

	out := []guest{}
	for _, row := range f.rows {
		if term == "" || strings.Contains(strings.ToLower(row.FirstName+" "+row.LastName+" "+row.Email), strings.ToLower(term)) {
			out = append(out, row)
		}
	}

	return out, nil
}

func (f *fakeRemote) Create(_ context.Context, draft guestDraft) (guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	row := fromDraft(fmt.Sprintf("g%d", f.next), draft)
	f.rows = append(f.rows, row)

	return row, nil
}

func (f *fakeRemote) Update(_ context.Context, id string, draft guestDraft) (guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := slices.IndexFunc(f.rows, func(g guest) bool { return g.ID == id })
	if idx < 0 {
		return guest{}, failure.NotFound("Guest not found")
	}

	f.rows[idx] = fromDraft(id, draft)

	return f.rows[idx], nil
}

func (f *fakeRemote) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	before := len(f.rows)
	f.rows = slices.DeleteFunc(f.rows, func(g guest) bool { return g.ID == id })

	if len(f.rows) == before {
		return failure.NotFound("Guest not found")
	}

	return nil
}

func seedGuests() []guest {
	return []guest{
		{ID: "g1", FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Phone: "111", IDType: "passport", IDNumber: "P1"},
		{ID: "g2", FirstName: "Bob", LastName: "Ray", Email: "bob@x.com", Phone: "222", IDType: "national_id", IDNumber: "N2"},
		{ID: "g3", FirstName: "Cy", LastName: "Doe", Email: "cy@x.com", Phone: "333", IDType: "driving_license", IDNumber: "D3"},
	}
}

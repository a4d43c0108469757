package dto

import "strings"

// SearchRequest changes the search term of a collection.
type SearchRequest struct {
	Term string `json:"term" validate:"max=200"`
}

// Normalize trims the term; a blank term lists everything.
func (r *SearchRequest) Normalize() {
	r.Term = strings.TrimSpace(r.Term)
}

// DraftRequest opens the draft buffer. Without an id a create draft is opened.
type DraftRequest struct {
	ID string `json:"id,omitempty"`
}

func (r DraftRequest) Editing() bool {
	return strings.TrimSpace(r.ID) != ""
}

package resource

// Descriptor carries everything the generic components need to know about one
// entity kind. T is the entity as the server returns it, D is the editable draft.
type Descriptor[T any, D any] struct {
	// Name is the resource path segment, e.g. "guests".
	Name string
	// Envelope is the key a list response may wrap its array in. Defaults to Name.
	Envelope string
	ID       func(entity T) string
	Defaults func() D
	ToDraft  func(entity T) D
}

func (d Descriptor[T, D]) EnvelopeKey() string {
	if d.Envelope == "" {
		return d.Name
	}

	return d.Envelope
}

package slang

import "github.com/google/uuid"

// Atom is a uniquely allocated identity token carrying a descriptive label.
// Atoms are comparable and usable as map keys; equality is always by
// identity, never by description. Two atoms built from the same description
// are never equal.
type Atom struct {
	id   uuid.UUID
	desc string
}

// NewAtom allocates a fresh atom. Identity is never interned by description.
func NewAtom(description string) Atom {
	return Atom{id: uuid.New(), desc: description}
}

func (a Atom) Description() string {
	return a.desc
}

func (a Atom) ID() uuid.UUID {
	return a.id
}

func (a Atom) String() string {
	return "Atom(" + a.desc + ")"
}

package matching

import "fmt"

// table is the shared backing state of a Matching and its inverse views.
// fwd is indexed by destination id, inv by source id. hasInv distinguishes a
// built-but-empty inverse from an absent one.
type table struct {
	fwd    []Entry
	inv    []Entry
	hasInv bool
}

// Matching is a handle over a shared table. The inverted flag swaps the roles
// of the two directions, so an inverse view is a second handle on the same
// table rather than a copy.
type Matching struct {
	tb       *table
	inverted bool
}

// New returns a matching with n all-unassigned entries and no inverse table.
func New(n int) *Matching {
	return &Matching{tb: &table{fwd: make([]Entry, max(n, 0))}}
}

// pri returns the forward table of this view.
func (m *Matching) pri() *[]Entry {
	if m.inverted {
		return &m.tb.inv
	}

	return &m.tb.fwd
}

// sec returns the inverse table of this view and whether it exists. For an
// inverse view the "inverse" is the original forward table, which always
// exists.
func (m *Matching) sec() (*[]Entry, bool) {
	if m.inverted {
		return &m.tb.fwd, true
	}

	return &m.tb.inv, m.tb.hasInv
}

// Len returns the number of destination entries in this view.
func (m *Matching) Len() int { return len(*m.pri()) }

// HasInverse reports whether the inverse table of this view exists.
func (m *Matching) HasInverse() bool {
	_, ok := m.sec()

	return ok
}

// Get returns the entry for destination d. Out-of-range ids read as plain
// unassigned, so callers sizing the matching lazily need no bounds dance.
func (m *Matching) Get(d int) Entry {
	pri := *m.pri()
	if d < 1 || d > len(pri) {
		return Entry{}
	}

	return pri[d-1]
}

// NMatched returns the number of assigned entries, O(n).
func (m *Matching) NMatched() int {
	count := 0
	for _, e := range *m.pri() {
		if e.Assigned() {
			count++
		}
	}

	return count
}

// Set assigns destination d to source s, preserving injectivity. When the
// inverse table exists, the destination currently holding s is evicted first,
// then the inverse entry of d's previous source is cleared, the inverse grown
// as needed, and finally both entries written — in that order, so no step
// reads a stale eviction target.
func (m *Matching) Set(d, s int) error {
	if s < 1 {
		return fmt.Errorf("%w: %d", ErrBadSource, s)
	}

	return m.SetEntry(d, Assigned(s))
}

// SetUnassigned clears destination d, optionally recording a payload.
func (m *Matching) SetUnassigned(d int, payload ...any) error {
	e := Entry{}
	if len(payload) > 0 {
		e.payload = payload[0]
	}

	return m.SetEntry(d, e)
}

// SetEntry writes an arbitrary entry for destination d, repairing the inverse
// table when it exists. ErrDstRange when d is outside 1..Len.
func (m *Matching) SetEntry(d int, e Entry) error {
	pri := m.pri()
	if d < 1 || d > len(*pri) {
		return fmt.Errorf("%w: %d (have %d entries)", ErrDstRange, d, len(*pri))
	}
	m.assign(d, e)

	return nil
}

// Push appends a new entry and returns its destination id. The inverse table,
// when present, is updated the same way Set does.
func (m *Matching) Push(e Entry) int {
	pri := m.pri()
	*pri = append(*pri, Entry{})
	d := len(*pri)
	m.assign(d, e)

	return d
}

// assign performs the ordered write described on Set. d is in range.
func (m *Matching) assign(d int, e Entry) {
	pri := m.pri()
	sec, hasSec := m.sec()
	if hasSec {
		if e.Assigned() {
			s := e.src
			// Grow the inverse to hold s, filling gaps with unassigned.
			if s > len(*sec) {
				*sec = append(*sec, make([]Entry, s-len(*sec))...)
			}
			// Evict the destination currently holding s.
			if prev := (*sec)[s-1]; prev.Assigned() && prev.src != d {
				(*pri)[prev.src-1] = Entry{}
			}
		}
		// Clear the inverse entry of d's previous source, if it still points
		// at d.
		if old := (*pri)[d-1]; old.Assigned() && old.src <= len(*sec) && (*sec)[old.src-1].src == d {
			(*sec)[old.src-1] = Entry{}
		}
		if e.Assigned() {
			(*sec)[e.src-1] = Assigned(d)
		}
	}
	(*pri)[d-1] = e
}

// Complete builds the inverse table by a single forward scan. n gives its
// length; by default the largest assigned source id is used, and an explicit
// n smaller than that is grown to fit. A second call is a no-op.
func (m *Matching) Complete(n ...int) {
	if _, ok := m.sec(); ok {
		return
	}
	tb := m.tb
	size := 0
	if len(n) > 0 {
		size = n[0]
	}
	for _, e := range tb.fwd {
		if e.src > size {
			size = e.src
		}
	}
	tb.inv = make([]Entry, size)
	for i, e := range tb.fwd {
		if e.Assigned() {
			tb.inv[e.src-1] = Assigned(i + 1)
		}
	}
	tb.hasInv = true
}

// InverseOf returns the entry for source s in the inverse direction. Requires
// Complete; out-of-range ids read as unassigned.
func (m *Matching) InverseOf(s int) (Entry, error) {
	sec, ok := m.sec()
	if !ok {
		return Entry{}, ErrNoInverse
	}
	if s < 1 || s > len(*sec) {
		return Entry{}, nil
	}

	return (*sec)[s-1], nil
}

// Inverse returns an aliasing view with the forward and inverse directions
// swapped. Requires Complete. Mutations through either handle are visible
// through both.
func (m *Matching) Inverse() (*Matching, error) {
	if _, ok := m.sec(); !ok {
		return nil, ErrNoInverse
	}

	return &Matching{tb: m.tb, inverted: !m.inverted}, nil
}

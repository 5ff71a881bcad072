package dispatchers

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSelector = errors.New("duplicate selector")
	ErrDuplicateName     = errors.New("duplicate command name")
	ErrEmptySelector     = errors.New("empty selector")
	ErrMissingInvoker    = errors.New("route has no invoker")
)

// Table is the ordered, closed set of routes of a tool. Declaration order
// is listing order. A Table is immutable once built.
type Table struct {
	entries []RouteEntry
	index   map[Selector]int
}

// NewTable validates entries and builds a Table.
func NewTable(entries ...RouteEntry) (*Table, error) {
	t := &Table{
		entries: make([]RouteEntry, 0, len(entries)),
		index:   make(map[Selector]int, len(entries)),
	}
	names := make(map[string]Selector, len(entries))

	for _, e := range entries {
		if e.Selector == "" {
			return nil, fmt.Errorf("route %q: %w", e.Spec.Name, ErrEmptySelector)
		}
		if e.Invoke == nil {
			return nil, fmt.Errorf("route %q: %w", e.Selector, ErrMissingInvoker)
		}
		if _, dup := t.index[e.Selector]; dup {
			return nil, fmt.Errorf("route %q: %w", e.Selector, ErrDuplicateSelector)
		}
		if e.Spec.Name != "" {
			if other, dup := names[e.Spec.Name]; dup {
				return nil, fmt.Errorf("routes %q and %q share name %q: %w", other, e.Selector, e.Spec.Name, ErrDuplicateName)
			}
			names[e.Spec.Name] = e.Selector
		}

		t.index[e.Selector] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// MustTable is NewTable for package-level tables; it panics on error.
func MustTable(entries ...RouteEntry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(fmt.Sprintf("dispatchers: %v", err))
	}
	return t
}

// Entries returns the routes in declaration order.
func (t *Table) Entries() []RouteEntry {
	return append([]RouteEntry(nil), t.entries...)
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Selectors returns every selector in declaration order.
func (t *Table) Selectors() []Selector {
	out := make([]Selector, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Selector
	}
	return out
}

// Lookup finds the route for sel.
func (t *Table) Lookup(sel Selector) (RouteEntry, bool) {
	i, ok := t.index[sel]
	if !ok {
		return RouteEntry{}, false
	}
	return t.entries[i], true
}

// Has reports whether sel is registered.
func (t *Table) Has(sel Selector) bool {
	_, ok := t.index[sel]
	return ok
}

// mustLookup is used once the selector is known to be registered; a miss
// means the caller skipped validation.
func (t *Table) mustLookup(sel Selector) RouteEntry {
	e, ok := t.Lookup(sel)
	if !ok {
		panic(fmt.Sprintf("dispatchers: selector %q reached the router unvalidated", sel))
	}
	return e
}

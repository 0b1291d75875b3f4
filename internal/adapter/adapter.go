// Package adapter holds list data for the layouts and reports changes to
// observers such as divider decorations and the pull controller.
package adapter

import (
	"fmt"
	"slices"
)

// EventKind classifies a data change.
type EventKind int

const (
	// Changed means the whole data set may differ.
	Changed EventKind = iota
	Inserted
	Removed
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	default:
		return "changed"
	}
}

// Event describes one data change. Position is -1 for Changed.
type Event struct {
	Kind     EventKind
	Position int
}

// Observer receives data changes synchronously.
type Observer func(Event)

// Source is the read side of an adapter.
type Source interface {
	ItemCount() int
	Register(Observer) (unregister func())
}

// Adapter is an ordered list of items. It is not safe for concurrent use;
// mutate it from the goroutine that renders it.
type Adapter[T comparable] struct {
	items     []T
	observers map[int]Observer
	nextID    int
}

// New creates an adapter holding items.
func New[T comparable](items ...T) *Adapter[T] {
	return &Adapter[T]{items: slices.Clone(items)}
}

// ItemCount returns the number of items.
func (a *Adapter[T]) ItemCount() int {
	return len(a.items)
}

// Item returns the item at position, or false when out of range.
func (a *Adapter[T]) Item(position int) (T, bool) {
	var zero T
	if position < 0 || position >= len(a.items) {
		return zero, false
	}
	return a.items[position], true
}

// Items returns a copy of the items.
func (a *Adapter[T]) Items() []T {
	return slices.Clone(a.items)
}

// Refresh replaces the items with list, or appends list when appendItems is
// set, and reports a data-set change.
func (a *Adapter[T]) Refresh(list []T, appendItems bool) *Adapter[T] {
	if !appendItems {
		a.items = a.items[:0]
	}
	a.items = append(a.items, list...)
	a.notify(Event{Kind: Changed, Position: -1})
	return a
}

// AddList inserts list at position, keeping its order. Empty lists are
// ignored.
func (a *Adapter[T]) AddList(list []T, position int) error {
	if len(list) == 0 {
		return nil
	}
	if err := a.checkInsert(position); err != nil {
		return err
	}
	a.items = slices.Insert(a.items, position, list...)
	a.notify(Event{Kind: Changed, Position: -1})
	return nil
}

// AddItem inserts item at position.
func (a *Adapter[T]) AddItem(item T, position int) error {
	if err := a.checkInsert(position); err != nil {
		return err
	}
	a.items = slices.Insert(a.items, position, item)
	a.notify(Event{Kind: Inserted, Position: position})
	return nil
}

// RemoveItem removes the first item equal to item. It reports whether an
// item was removed.
func (a *Adapter[T]) RemoveItem(item T) bool {
	position := slices.Index(a.items, item)
	if position < 0 {
		return false
	}
	return a.RemoveAt(position)
}

// RemoveAt removes the item at position. Out-of-range positions are ignored.
func (a *Adapter[T]) RemoveAt(position int) bool {
	if position < 0 || position >= len(a.items) {
		return false
	}
	a.items = slices.Delete(a.items, position, position+1)
	a.notify(Event{Kind: Removed, Position: position})
	return true
}

// Register adds an observer and returns a function removing it.
func (a *Adapter[T]) Register(o Observer) func() {
	if o == nil {
		return func() {}
	}
	if a.observers == nil {
		a.observers = make(map[int]Observer)
	}
	id := a.nextID
	a.nextID++
	a.observers[id] = o
	return func() { delete(a.observers, id) }
}

func (a *Adapter[T]) checkInsert(position int) error {
	if position < 0 || position > len(a.items) {
		return fmt.Errorf("insert position %d out of range [0, %d]", position, len(a.items))
	}
	return nil
}

func (a *Adapter[T]) notify(e Event) {
	ids := make([]int, 0, len(a.observers))
	for id := range a.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		a.observers[id](e)
	}
}

var _ Source = (*Adapter[int])(nil)

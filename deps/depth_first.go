package deps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDependencyCycle is matched (via errors.Is) by every *CycleError
var ErrDependencyCycle = errors.New("circular dependency between APIs")

// PendingItem is one item still waiting to be emitted when a cycle was found
type PendingItem struct {
	Name QualifiedName

	// Unmet is the list of dependencies of the item that were never emitted
	Unmet []QualifiedName
}

// CycleError is returned by the orderer when no item in its queue can be
// emitted: the remaining items depend on each other.  It lists every item left
// in the queue (in queue order) along with the dependencies it was waiting on.
type CycleError struct {
	Pending []PendingItem
}

func (ce *CycleError) Error() string {
	sb := strings.Builder{}
	sb.WriteString("failed to find a candidate; there must be a circular dependency. Queue is:")

	for _, item := range ce.Pending {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", item.Name, joinNames(item.Unmet, ",")))
	}

	return sb.String()
}

func (ce *CycleError) Is(target error) bool {
	return target == ErrDependencyCycle
}

// -----------------------------------------------------------------------------

// DepthFirstIter yields items in depth-first order: every item is yielded only
// after all the items it depends on (that are part of the same input) have
// been yielded.  It is single-pass: once drained it yields nothing.
type DepthFirstIter[T HasDependencies] struct {
	// items is the arena holding every input item; the queue refers to items
	// by their index in it
	items []T

	// queue is the rotating work queue of arena indices
	queue []int

	// yetToDo is the set of names of all the items not yet yielded
	yetToDo map[QualifiedName]struct{}

	// err is set once a cycle has been detected
	err error
}

// DepthFirst returns an iterator over inputs in depth-first order, ie. those
// with no dependencies first.  Among items that are ready at the same time,
// input order is preserved.
func DepthFirst[T HasDependencies](inputs []T) *DepthFirstIter[T] {
	it := &DepthFirstIter[T]{
		items:   inputs,
		queue:   make([]int, len(inputs)),
		yetToDo: make(map[QualifiedName]struct{}, len(inputs)),
	}

	for i, item := range inputs {
		it.queue[i] = i
		it.yetToDo[item.Name()] = struct{}{}
	}

	return it
}

// Next returns the next item in depth-first order.  The boolean flag is false
// when there are no more items.  If the remaining items form a cycle, a
// *CycleError is returned and every subsequent call returns that same error.
func (it *DepthFirstIter[T]) Next() (T, bool, error) {
	var zero T
	if it.err != nil {
		return zero, false, it.err
	}

	if len(it.queue) == 0 {
		return zero, false, nil
	}

	firstCandidate := it.items[it.queue[0]].Name()
	for len(it.queue) > 0 {
		ndx := it.queue[0]
		it.queue = it.queue[1:]

		candidate := it.items[ndx]
		if !it.blocked(candidate) {
			delete(it.yetToDo, candidate.Name())
			return candidate, true, nil
		}

		it.queue = append(it.queue, ndx)

		// a full rotation of the queue with nothing emitted
		if it.items[it.queue[0]].Name() == firstCandidate {
			it.err = it.cycleError()
			it.queue = nil
			return zero, false, it.err
		}
	}

	return zero, false, nil
}

// Collect drains the iterator and returns the items in the order they were
// yielded.  No partial ordering is returned if a cycle is encountered.
func (it *DepthFirstIter[T]) Collect() ([]T, error) {
	var ordered []T
	for {
		item, ok, err := it.Next()
		if err != nil {
			return nil, err
		}

		if !ok {
			return ordered, nil
		}

		ordered = append(ordered, item)
	}
}

// blocked returns whether any dependency of item has yet to be yielded
func (it *DepthFirstIter[T]) blocked(item T) bool {
	for _, dep := range item.Deps() {
		if _, ok := it.yetToDo[dep]; ok {
			return true
		}
	}

	return false
}

// cycleError builds the diagnostic for the items remaining in the queue
func (it *DepthFirstIter[T]) cycleError() *CycleError {
	ce := &CycleError{Pending: make([]PendingItem, 0, len(it.queue))}

	for _, ndx := range it.queue {
		item := it.items[ndx]

		var unmet []QualifiedName
		for _, dep := range item.Deps() {
			if _, ok := it.yetToDo[dep]; ok {
				unmet = append(unmet, dep)
			}
		}

		ce.Pending = append(ce.Pending, PendingItem{Name: item.Name(), Unmet: unmet})
	}

	return ce
}

func joinNames(names []QualifiedName, sep string) string {
	strs := make([]string, len(names))
	for i, name := range names {
		strs[i] = string(name)
	}

	return strings.Join(strs, sep)
}

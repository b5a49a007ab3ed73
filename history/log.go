// Package history provides undo/redo and named save points over immutable
// state snapshots. Because the editor never mutates a state after producing
// it, history is snapshot-based: keeping a reference to an old state is
// enough to restore it.
package history

// Log is a bounded undo/redo log. Pushing a snapshot invalidates the redo
// tail, matching the usual editor behavior where a new edit discards
// previously undone states.
type Log[S any] struct {
	past   []S
	future []S
	limit  int
}

// NewLog creates a log retaining at most limit undoable snapshots. A
// non-positive limit means unbounded.
func NewLog[S any](limit int) *Log[S] {
	return &Log[S]{limit: limit}
}

// Push records a snapshot as the new most recent undo target and clears
// the redo tail.
func (l *Log[S]) Push(snapshot S) {
	l.past = append(l.past, snapshot)
	if l.limit > 0 && len(l.past) > l.limit {
		// Drop the oldest entry; copy so the backing array does not pin it.
		l.past = append([]S(nil), l.past[1:]...)
	}
	l.future = nil
}

// CanUndo reports whether an undo target exists.
func (l *Log[S]) CanUndo() bool {
	return len(l.past) > 0
}

// CanRedo reports whether a redo target exists.
func (l *Log[S]) CanRedo() bool {
	return len(l.future) > 0
}

// Undo returns the most recent snapshot, moving the given current one onto
// the redo tail. The second return is false when nothing can be undone.
func (l *Log[S]) Undo(current S) (S, bool) {
	if len(l.past) == 0 {
		var zero S
		return zero, false
	}

	last := l.past[len(l.past)-1]
	l.past = l.past[:len(l.past)-1]
	l.future = append(l.future, current)
	return last, true
}

// Redo returns the most recently undone snapshot, moving the given current
// one back onto the undo stack.
func (l *Log[S]) Redo(current S) (S, bool) {
	if len(l.future) == 0 {
		var zero S
		return zero, false
	}

	next := l.future[len(l.future)-1]
	l.future = l.future[:len(l.future)-1]
	l.past = append(l.past, current)
	return next, true
}

// Len returns the number of undoable snapshots.
func (l *Log[S]) Len() int {
	return len(l.past)
}

package editor

import (
	"context"
	"fmt"

	"github.com/smallnest/nodegraphgo/history"
	"github.com/smallnest/nodegraphgo/log"
)

// Session owns the state of one logical editor and is the single dispatch
// path mutating it. All methods must be called from one goroutine at a
// time; concurrent readers of any *State a Session has returned are always
// safe, since states are never mutated after being produced.
type Session struct {
	state     *State
	logger    log.Logger
	listeners []DispatchListener

	undo      *history.Log[*State]
	snapshots history.Store[*State]
}

// SessionOption customizes a new Session.
type SessionOption func(*Session)

// WithLogger sets the logger used by the session. Defaults to the log
// package's default logger.
func WithLogger(logger log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithUndoLimit bounds how many states the undo log retains. Zero disables
// undo entirely.
func WithUndoLimit(limit int) SessionOption {
	return func(s *Session) {
		if limit == 0 {
			s.undo = nil
			return
		}
		s.undo = history.NewLog[*State](limit)
	}
}

// WithSnapshotStore sets the store backing named save points. Defaults to
// an in-memory store.
func WithSnapshotStore(store history.Store[*State]) SessionOption {
	return func(s *Session) {
		s.snapshots = store
	}
}

// NewSession creates a session over an initial state built by NewState.
func NewSession(initial *State, opts ...SessionOption) *Session {
	s := &Session{
		state:     initial,
		logger:    log.GetDefaultLogger(),
		undo:      history.NewLog[*State](defaultUndoLimit),
		snapshots: history.NewMemoryStore[*State](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const defaultUndoLimit = 100

// State returns the current state snapshot.
func (s *Session) State() *State {
	return s.state
}

// AddListener registers a dispatch listener.
func (s *Session) AddListener(listener DispatchListener) {
	s.listeners = append(s.listeners, listener)
}

// Dispatch reduces an action against the current state. On success the
// session adopts the new state and the prior one becomes undoable. On a
// rejection the state is unchanged and the rejection is returned for UI
// feedback; an *InvalidActionError signals a malformed action.
func (s *Session) Dispatch(action Action) error {
	next, err := Reduce(s.state, action)
	if err != nil {
		s.notify(EventRejected, action, s.state, err)
		return err
	}

	if s.undo != nil && next != s.state {
		s.undo.Push(s.state)
	}
	s.state = next
	s.notify(EventApplied, action, next, nil)
	return nil
}

func (s *Session) notify(event DispatchEvent, action Action, state *State, err error) {
	for _, l := range s.listeners {
		l.OnDispatch(event, action, state, err)
	}
}

// CanUndo reports whether an earlier state is available.
func (s *Session) CanUndo() bool {
	return s.undo != nil && s.undo.CanUndo()
}

// CanRedo reports whether an undone state can be restored.
func (s *Session) CanRedo() bool {
	return s.undo != nil && s.undo.CanRedo()
}

// Undo rewinds the session to the state before the last applied action.
func (s *Session) Undo() bool {
	if s.undo == nil {
		return false
	}
	prev, ok := s.undo.Undo(s.state)
	if !ok {
		return false
	}
	s.state = prev
	return true
}

// Redo restores the state undone by the last Undo.
func (s *Session) Redo() bool {
	if s.undo == nil {
		return false
	}
	next, ok := s.undo.Redo(s.state)
	if !ok {
		return false
	}
	s.state = next
	return true
}

// SaveSnapshot records the current state as a named save point and returns
// its id. Snapshots live in the session's store and survive undo/redo.
func (s *Session) SaveSnapshot(ctx context.Context, name string) (string, error) {
	snapshot := history.NewSnapshot(name, s.state)
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return "", fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	s.logger.Debug("saved snapshot %s (%s)", snapshot.ID, name)
	return snapshot.ID, nil
}

// RestoreSnapshot replaces the current state with a saved one. The replaced
// state becomes undoable.
func (s *Session) RestoreSnapshot(ctx context.Context, id string) error {
	snapshot, err := s.snapshots.Load(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load snapshot %q: %w", id, err)
	}

	if s.undo != nil {
		s.undo.Push(s.state)
	}
	s.state = snapshot.State
	return nil
}

// Snapshots lists the session's saved snapshots.
func (s *Session) Snapshots(ctx context.Context) ([]*history.Snapshot[*State], error) {
	return s.snapshots.List(ctx)
}

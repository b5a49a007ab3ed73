package editor

import (
	"github.com/smallnest/nodegraphgo/log"
)

// DispatchEvent classifies listener notifications.
type DispatchEvent string

const (
	// EventApplied means the action passed validation and produced a new
	// state.
	EventApplied DispatchEvent = "applied"

	// EventRejected means a precondition failed and the state is
	// unchanged.
	EventRejected DispatchEvent = "rejected"
)

// DispatchListener observes the outcome of every dispatched action. UI
// collaborators use this to trigger re-renders or rejected-drop feedback.
type DispatchListener interface {
	// OnDispatch is called after every dispatch with the action, the
	// resulting state (the prior state when rejected) and the rejection,
	// if any.
	OnDispatch(event DispatchEvent, action Action, state *State, err error)
}

// DispatchListenerFunc is a function adapter for DispatchListener.
type DispatchListenerFunc func(event DispatchEvent, action Action, state *State, err error)

// OnDispatch implements the DispatchListener interface.
func (f DispatchListenerFunc) OnDispatch(event DispatchEvent, action Action, state *State, err error) {
	f(event, action, state, err)
}

// LoggingListener logs every dispatch outcome through a log.Logger. Applied
// actions log at debug level, rejections at warn.
type LoggingListener struct {
	logger log.Logger
}

// NewLoggingListener creates a listener that logs dispatch outcomes.
func NewLoggingListener(logger log.Logger) *LoggingListener {
	if logger == nil {
		logger = log.GetDefaultLogger()
	}
	return &LoggingListener{logger: logger}
}

// OnDispatch implements the DispatchListener interface.
func (l *LoggingListener) OnDispatch(event DispatchEvent, action Action, state *State, err error) {
	switch event {
	case EventRejected:
		l.logger.Warn("action %s rejected: %v", action.Kind(), err)
	default:
		l.logger.Debug("action %s applied, depth=%d nodes=%d edges=%d",
			action.Kind(), state.Depth(), state.ActiveGraph().NodeCount(), state.ActiveGraph().EdgeCount())
	}
}

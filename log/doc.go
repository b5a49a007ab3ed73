// Package log provides a simple, leveled logging interface for the node
// graph editor engine.
//
// The Logger interface has four printf-style methods (Debug, Info, Warn,
// Error) filtered by a LogLevel. Two implementations ship with the package:
// DefaultLogger on top of Go's standard log package, and GologLogger
// wrapping github.com/kataras/golog for hosts already using it.
//
// # Basic usage
//
//	logger := log.NewDefaultLogger(log.LogLevelInfo)
//	logger.Info("session started")
//	logger.Debug("dispatching %v", action)
//
// # Custom output
//
//	file, _ := os.OpenFile("editor.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
//	logger := log.NewCustomLogger(file, log.LogLevelDebug)
//
// # golog integration
//
//	glogger := golog.New()
//	glogger.SetPrefix("[MyApp] ")
//	logger := log.NewGologLogger(glogger)
//
// # Package-level logger
//
// A session logs through the package-level default unless given its own
// Logger. Swap it globally with SetDefaultLogger, or change just the level
// with SetLogLevel:
//
//	log.SetLogLevel(log.LogLevelDebug)
//
// All shipped implementations are safe for concurrent use.
package log

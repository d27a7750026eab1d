// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// Loggers are configured once, at creation time, using functional options.
// A configured [Logger] is an immutable value and is safe for concurrent use.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("cardinality", 3))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// The zero value [Logger] discards everything, so libraries may accept a
// Logger option and log unconditionally.
//
// # Package-level Logger
//
// The package-level functions ([Debug], [Info], ...) write through a default
// logger on stderr, reconfigured with [Config].
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError].
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. When pretty printing is enabled,
// text output is colorized using [github.com/fatih/color].
package log

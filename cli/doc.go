// Package cli contains the command line interface for clasp.
//
// # Usage
//
//	clasp [flags] <command> [command-flags] [-- tokens...]
//
// For example:
//
//	clasp parse -s 'l,p#,d*' -- -l -p 8080 -d /usr/logs
//	clasp parse -s 'l,p#,d*' -q 'has("l") && p > 1024' -- -lp 8080
//	clasp check -s 'x##,y*'
//
// # Configuration Files
//
// Flag values are resolved from two optional files in the configuration
// directory (e.g., ~/.config/clasp):
//
//   - config.json: loaded with [kong.JSON]
//   - config.yaml: loaded with a YAML resolver; nested mappings are joined
//     with "-" and underscores may replace hyphens
//
// Command-line flags override config file values. The init command writes
// the current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output (default: stderr is a terminal)
//
// Logging flags are applied before the remaining command line is parsed, so
// they affect diagnostics emitted during parsing.
//
// # Profiling Options
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/clasp/pprof)
//
// The bench command is a convenient profiling target:
//
//	clasp --pprof-mode=cpu bench -s 'l,p#,d*' -n 100000 -- -l -p 8080 -d /tmp
package cli

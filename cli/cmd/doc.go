// Package cmd implements the clasp subcommands.
//
//   - parse: parse tokens against a schema and render the result
//   - check: compile a schema and list its flags
//   - usage: print the usage synopsis of a schema
//   - bench: parse tokens repeatedly (a profiling target)
//   - init:  write the current flag values to the YAML configuration file
//   - version: print version information
//
// Commands read the [github.com/alecthomas/kong] context stored by
// [WithContext] and write results to its standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)

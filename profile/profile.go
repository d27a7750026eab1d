package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Stopper stops a running profiler.
type Stopper interface{ Stop() }

// Config functions return all supported profiler configuration parameters.
type Config func() (mode, path string, quiet bool)

// Default is the zero configuration: profiling disabled.
func Default() (mode, path string, quiet bool) { return "", "", false }

// Start initializes the profiler and returns a [Stopper] for it.
//
// If the configured mode is empty or unrecognized, Start returns a no-op
// implementation. Both Start and Stop are always safely callable.
func (c Config) Start() Stopper {
	if c == nil {
		return ignore{}
	}

	mode, path, quiet := c()

	opts := options(mode, path, quiet)
	if opts == nil {
		return ignore{}
	}

	return profile.Start(opts...)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c.values()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c.values()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet returns a functional option for setting a profiler's quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c.values()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// Modes returns the sorted list of supported profiling modes.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

func (c Config) values() (string, string, bool) {
	if c == nil {
		return Default()
	}

	return c()
}

// options translates a configuration into pkg/profile options.
// It returns nil if m is not a supported mode.
func options(m, path string, quiet bool) []func(*profile.Profile) {
	fn, ok := mode[m]
	if !ok {
		return nil
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if path != "" {
		opts = append(opts, profile.ProfilePath(path))
	}

	if quiet {
		opts = append(opts, profile.Quiet)
	}

	return opts
}

type ignore struct{}

func (ignore) Stop() {}

// Package profile provides optional runtime profiling for clasp.
//
// Profiling is driven by [github.com/pkg/profile] and is disabled unless a
// mode is selected. With an empty mode, [Config.Start] returns a no-op
// controller, so callers may always defer its Stop method.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace profiling
//
// Use [Modes] to retrieve the list programmatically.
//
// # Usage
//
//	var cfg profile.Config = profile.Default
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	defer cfg.Start().Stop()
//
// Profiles are written to the configured directory with names matching the
// mode (e.g., cpu.pprof) and can be inspected with go tool pprof:
//
//	clasp bench --pprof-mode cpu -s 'l,p#,d*' -n 100000 -- -l -p 8080 -d /tmp
//	go tool pprof -http=: ~/.cache/clasp/pprof/cpu.pprof
package profile

// Dir is the name of the subdirectory of the cache directory that holds
// profile output.
const Dir = `pprof`

package cli

import (
	"errors"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML, "/path/to/config.yaml")
//
// The YAML document is converted as follows:
//   - The top-level mapping holds flag values keyed by flag name
//   - Flag names with hyphens (e.g., "log-level") may use underscores
//     (e.g., "log_level")
//   - Nested mappings are flattened by joining keys with "-", so
//     "log: {level: debug}" sets --log-level
//   - Numbers are passed to kong as strings
//
// Example config file:
//
//	log:
//	  level: debug
//	  format: json
//	log_pretty: false
//
// Command-line flags override config file values. An empty document yields
// an empty configuration.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any

	err := yaml.NewDecoder(r).Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, err
	}

	cfg := make(config, len(doc))
	flatten(cfg, "", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for flat flag-name maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys may use
	// underscores. Try both forms.
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return value, nil
		}
	}

	return nil, nil
}

// flatten copies the scalar leaves of m into cfg keyed by their hyphen-joined
// path below prefix.
func flatten(cfg config, prefix string, m map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		name := key
		if prefix != "" {
			name = prefix + "-" + key
		}

		switch v := m[key].(type) {
		case map[string]any:
			flatten(cfg, name, v)

		default:
			cfg[name] = scalar(v)
		}
	}
}

// scalar converts a decoded YAML value to a form kong can map onto a flag.
// Kong requires numbers as strings for parsing.
func scalar(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case []any:
		list := make([]any, len(n))
		for i, e := range n {
			list[i] = scalar(e)
		}

		return list
	default:
		return v
	}
}

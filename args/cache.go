package args

import (
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// schemaCache stores compiled schemas keyed by the xxh3 hash of their
// source text. Only immutable *Schema values (or compile errors) are stored;
// marshaler slots are always created per parse.
var schemaCache sync.Map

// cached is one schemaCache entry. Compilation runs at most once per entry.
type cached struct {
	once   sync.Once
	source string
	schema *Schema
	err    error
}

// cacheKey returns the cache key for schema text.
func cacheKey(schema string) string {
	return strconv.FormatUint(xxh3.HashString(schema), 36)
}

// compileCached compiles schema through the cache and reports whether the
// result was already present.
func compileCached(schema string) (*Schema, bool, error) {
	entry := &cached{source: schema}

	value, loaded := schemaCache.LoadOrStore(cacheKey(schema), entry)
	hit := value.(*cached)

	// Hash collision: compile without caching.
	if hit.source != schema {
		sch, err := compile(schema)

		return sch, false, err
	}

	hit.once.Do(func() {
		hit.schema, hit.err = compile(schema)
	})

	return hit.schema, loaded, hit.err
}

// ClearCache removes all cached schemas.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	schemaCache.Clear()
}

package args

import (
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"
)

// Args is the result of a successful parse.
// It is read-only once returned by [Parse].
type Args struct {
	schema *Schema
	values map[rune]*Value
	found  map[rune]struct{}
}

// newArgs instantiates a fresh slot for every flag declared by sch.
func newArgs(sch *Schema) *Args {
	a := &Args{
		schema: sch,
		values: make(map[rune]*Value, sch.Len()),
		found:  make(map[rune]struct{}),
	}

	for flag, kind := range sch.All() {
		a.values[flag] = newValue(kind)
	}

	return a
}

// Schema returns the compiled schema the arguments were parsed against.
func (a *Args) Schema() *Schema { return a.schema }

// Cardinality returns the number of distinct flags found.
func (a *Args) Cardinality() int { return len(a.found) }

// Has reports whether flag appeared in some flag cluster.
func (a *Args) Has(flag rune) bool {
	_, ok := a.found[flag]

	return ok
}

// Found returns the flags that appeared in some flag cluster, sorted.
func (a *Args) Found() []rune {
	return slices.Sorted(maps.Keys(a.found))
}

// Kind returns the declared kind of flag.
func (a *Args) Kind(flag rune) (Kind, bool) {
	return a.schema.Lookup(flag)
}

// Value returns the current value of a declared flag as bool, string, int,
// or float64. Undeclared flags report false.
func (a *Args) Value(flag rune) (any, bool) {
	v, ok := a.values[flag]
	if !ok {
		return nil, false
	}

	return v.Any(), true
}

// slot returns the slot of flag if it is declared with the given kind.
func (a *Args) slot(flag rune, kind Kind) (*Value, bool) {
	v, ok := a.values[flag]
	if !ok || v.kind != kind {
		return nil, false
	}

	return v, true
}

// GetBoolean returns the value of a boolean flag.
// It returns false if flag was not declared as a boolean or was not found.
func (a *Args) GetBoolean(flag rune) bool {
	if v, ok := a.slot(flag, KindBoolean); ok {
		return v.boolean
	}

	return false
}

// GetString returns the value of a string flag.
// It returns "" if flag was not declared as a string or was not found.
func (a *Args) GetString(flag rune) string {
	if v, ok := a.slot(flag, KindString); ok {
		return v.str
	}

	return ""
}

// GetInt returns the value of an integer flag.
// It returns 0 if flag was not declared as an integer or was not found.
func (a *Args) GetInt(flag rune) int {
	if v, ok := a.slot(flag, KindInteger); ok {
		return v.integer
	}

	return 0
}

// GetDouble returns the value of a double flag.
// It returns 0 if flag was not declared as a double or was not found.
func (a *Args) GetDouble(flag rune) float64 {
	if v, ok := a.slot(flag, KindDouble); ok {
		return v.double
	}

	return 0
}

// ToMap converts the arguments to a native Go map keyed by flag, holding the
// current value of every declared flag (zero values for flags not found).
func (a *Args) ToMap() map[string]any {
	result := make(map[string]any, len(a.values))

	for flag, v := range a.values {
		result[string(flag)] = v.Any()
	}

	return result
}

// MarshalJSON implements json.Marshaler.
// The output holds the declared values under "values" and the sorted found
// flags under "found". Non-finite doubles, which JSON numbers cannot
// represent, are encoded as the strings "NaN", "+Inf", and "-Inf".
func (a *Args) MarshalJSON() ([]byte, error) {
	found := make([]string, 0, len(a.found))
	for _, flag := range a.Found() {
		found = append(found, string(flag))
	}

	values := a.ToMap()
	for key, value := range values {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			values[key] = strconv.FormatFloat(f, 'g', -1, 64)
		}
	}

	return json.Marshal(struct {
		Values map[string]any `json:"values"`
		Found  []string       `json:"found"`
	}{
		Values: values,
		Found:  found,
	})
}

// Package taxonomy holds the static skill dictionary used by the screening
// engine. The table is initialized once at process start and is read-only
// afterwards, so it is safe to share across concurrent screenings.
package taxonomy

import "sort"

// Entry describes one canonical skill: the synonym strings that identify it
// in free text and the learning resources suggested when it is missing.
type Entry struct {
	Canonical string
	Synonyms  []string
	Resources []string
}

// All returns the canonical skill names in alphabetical order.
func All() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry for a canonical skill name.
func Lookup(name string) (Entry, bool) {
	entry, ok := table[name]
	return entry, ok
}

// Resources returns the learning resources for a canonical skill, or nil if
// the skill is unknown.
func Resources(name string) []string {
	entry, ok := table[name]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.Resources))
	copy(out, entry.Resources)
	return out
}

// Synonyms returns the synonym list for a canonical skill, or nil if the
// skill is unknown.
func Synonyms(name string) []string {
	entry, ok := table[name]
	if !ok {
		return nil
	}
	out := make([]string, len(entry.Synonyms))
	copy(out, entry.Synonyms)
	return out
}

// Visit calls fn for every entry in the table. Iteration order is not
// specified; callers needing determinism should range over All().
func Visit(fn func(Entry)) {
	for _, entry := range table {
		fn(entry)
	}
}

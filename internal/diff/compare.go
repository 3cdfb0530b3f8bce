// Package diff builds the key by file matrix of a set of .env files and
// derives the incomplete and diverging views from it.
package diff

import (
	"errors"
	"sort"

	"github.com/xmazu/envdiff/internal/envfile"
)

var ErrNoVariablesFound = errors.New("no variables found in provided files")

// Entry is the value a key holds in one file.
type Entry struct {
	Value  string `json:"value"`
	Quoted bool   `json:"quoted"`
}

// VariableMap maps each key to its value per file. Keys keep the order in
// which they were first seen. It is not modified after Compare returns.
type VariableMap struct {
	keys    []string
	entries map[string]map[string]Entry
}

func newVariableMap() *VariableMap {
	return &VariableMap{entries: make(map[string]map[string]Entry)}
}

func (vm *VariableMap) set(key, file string, e Entry) {
	perFile, ok := vm.entries[key]
	if !ok {
		perFile = make(map[string]Entry)
		vm.entries[key] = perFile
		vm.keys = append(vm.keys, key)
	}
	perFile[file] = e
}

// Compare parses every source in order and aggregates the assignments. When
// a key is assigned more than once in the same file the last one wins.
func Compare(sources []envfile.Source) (*VariableMap, error) {
	vm := newVariableMap()

	for _, src := range sources {
		for _, l := range src.Lines() {
			vm.set(l.Key, src.Name, Entry{Value: l.Value, Quoted: l.Quoted})
		}
	}

	if vm.Len() == 0 {
		return nil, ErrNoVariablesFound
	}

	return vm, nil
}

// Len is the number of distinct keys.
func (vm *VariableMap) Len() int {
	return len(vm.keys)
}

// Keys returns the keys in first-seen order.
func (vm *VariableMap) Keys() []string {
	return append([]string(nil), vm.keys...)
}

// Files returns the sorted identifiers of every file that defines at least
// one key.
func (vm *VariableMap) Files() []string {
	seen := make(map[string]bool)
	for _, perFile := range vm.entries {
		for f := range perFile {
			seen[f] = true
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Lookup returns the entry of key in file and whether the file defines it.
func (vm *VariableMap) Lookup(key, file string) (Entry, bool) {
	e, ok := vm.entries[key][file]
	return e, ok
}

// Filter returns a copy holding only the keys for which keep is true.
func (vm *VariableMap) Filter(keep func(key string) bool) *VariableMap {
	out := newVariableMap()
	for _, key := range vm.keys {
		if !keep(key) {
			continue
		}
		for f, e := range vm.entries[key] {
			out.set(key, f, e)
		}
	}
	return out
}

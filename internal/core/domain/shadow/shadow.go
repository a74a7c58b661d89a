/*
Package shadow defines the core domain entities for a shadowed command:
the Shadow record itself, the collection it lives in, and the persisted
store state that groups records with user settings.
*/
package shadow

import (
	"sort"
	"strings"
)

// CurrentStoreVersion is the version written to new store files. Loading
// an older version triggers migration in the store repository.
const CurrentStoreVersion = 1

/*
Shadow represents one shadowed command: the name being intercepted, the
replacement command line to run in its place, and the directory holding
the interception symlink. A (Name, BinPath) pair is unique within a
store; the same name may be shadowed independently under different
directories.
*/
type Shadow struct {
	Name        string `yaml:"name"`
	Command     string `yaml:"command"`
	BinPath     string `yaml:"bin_path"`
	Description string `yaml:"description,omitempty"`
}

// Settings holds user preferences persisted alongside the shadows.
type Settings struct {
	// BinPath overrides the default symlink directory. Empty means the
	// platform default (~/.local/bin on most systems).
	BinPath string `yaml:"bin_path,omitempty"`
	// AlwaysUseRaw makes every shim invocation run the original binary,
	// acting as a global kill switch without removing any shadows.
	AlwaysUseRaw bool `yaml:"always_use_raw,omitempty"`
}

// StoreState is the full persisted content of a shadow store.
type StoreState struct {
	Version  int      `yaml:"version"`
	Settings Settings `yaml:"settings,omitempty"`
	Shadows  Shadows  `yaml:"shadows,omitempty"`
}

// Shadows is a collection of Shadow records.
type Shadows []Shadow

// Find returns the record matching both name and binPath exactly.
func (s Shadows) Find(name, binPath string) (Shadow, bool) {
	for _, sh := range s {
		if sh.Name == name && sh.BinPath == binPath {
			return sh, true
		}
	}
	return Shadow{}, false
}

// FindByName returns every record with the given name, regardless of the
// directory it is installed in. Callers distinguish none/one/many.
func (s Shadows) FindByName(name string) Shadows {
	var matches Shadows
	for _, sh := range s {
		if sh.Name == name {
			matches = append(matches, sh)
		}
	}
	return matches
}

// Upsert returns the collection with sh added, replacing any existing
// record for the same (Name, BinPath) pair.
func (s Shadows) Upsert(sh Shadow) Shadows {
	for i, existing := range s {
		if existing.Name == sh.Name && existing.BinPath == sh.BinPath {
			out := make(Shadows, len(s))
			copy(out, s)
			out[i] = sh
			return out
		}
	}
	return append(s, sh)
}

// Delete returns the collection without the record matching (name, binPath).
func (s Shadows) Delete(name, binPath string) Shadows {
	var out Shadows
	for _, sh := range s {
		if sh.Name == name && sh.BinPath == binPath {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// Sorted returns a copy ordered by name, then by bin path. This is the
// documented ordering contract for list output and saved store files.
func (s Shadows) Sorted() Shadows {
	out := make(Shadows, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].BinPath < out[j].BinPath
	})
	return out
}

/*
SplitCommand splits a replacement command line into the executable name
and its embedded arguments, so that "eza --tree" dispatches as the
executable "eza" with a base argument "--tree". Splitting is on
whitespace only; quoting is not interpreted, matching how the shadows
are declared on the add command line. The second return is false when
the command is empty or blank.
*/
func SplitCommand(command string) (string, []string, bool) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

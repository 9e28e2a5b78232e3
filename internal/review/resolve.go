package review

import (
	"os"
	"path/filepath"
)

// ResolveSet picks one concrete file per slot for the given radix. A slot
// with no matching entry stays empty — callers render a placeholder. When
// several entries match one slot, the lexicographically smallest filename is
// chosen, so repeated scans of identical directory contents reproduce the
// identical choice.
func ResolveSet(dir, radix string, set PatternSet) []string {
	resolved := make([]string, len(set.Slots))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return resolved
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for i := range set.Slots {
			got, ok := set.Slots[i].match(name)
			if !ok || got != radix {
				continue
			}
			current := resolved[i]
			if current == "" || name < filepath.Base(current) {
				resolved[i] = filepath.Join(dir, name)
			}
		}
	}
	return resolved
}

package review

import (
	"os"
	"sort"
)

// DefaultMinSlots is the minimum number of distinct slots a discovered radix
// must satisfy to qualify. It filters out false positives from broad
// patterns like "^(.*)\.jpg$" matching every JPEG in the directory.
const DefaultMinSlots = 2

// Scan lists the directory (non-recursively) and returns every radix whose
// entries satisfy at least minSlots distinct slot patterns, in natural
// order. An entry counts toward at most one slot; the first matching slot by
// index wins. Zero qualifying radixes is a valid empty result.
func Scan(dir string, set PatternSet, minSlots int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{Dir: dir, Err: err}
	}

	if minSlots < 1 {
		minSlots = DefaultMinSlots
	}
	if minSlots > len(set.Slots) {
		minSlots = len(set.Slots)
	}

	slotsByRadix := make(map[string]map[int]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for i := range set.Slots {
			radix, ok := set.Slots[i].match(name)
			if !ok {
				continue
			}
			if slotsByRadix[radix] == nil {
				slotsByRadix[radix] = make(map[int]struct{})
			}
			slotsByRadix[radix][i] = struct{}{}
			break
		}
	}

	radixes := make([]string, 0, len(slotsByRadix))
	for radix, slots := range slotsByRadix {
		if len(slots) >= minSlots {
			radixes = append(radixes, radix)
		}
	}
	sort.Slice(radixes, func(i, j int) bool { return naturalLess(radixes[i], radixes[j]) })
	return radixes, nil
}

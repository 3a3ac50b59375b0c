package differ

import (
	"sort"

	"confdiff/core/ini"
)

// Difference records one key whose value drifted between the two sides.
type Difference struct {
	// Key identifies the drifted value.
	Key ini.Key

	// Left is the value on the left side.
	Left string

	// Right is the value on the right side.
	Right string
}

// Diff returns every key present in both maps whose values differ.
//
// Keys unique to either side are not reported. Values compare as exact
// strings; no normalization is applied beyond the trimming the parser
// already performed. Results are sorted by (section, property) so reports
// are deterministic.
func Diff(left, right ini.Map) []Difference {
	var diffs []Difference

	for key, lv := range left {
		rv, ok := right[key]
		if !ok || lv == rv {
			continue
		}
		diffs = append(diffs, Difference{Key: key, Left: lv, Right: rv})
	}

	sort.Slice(diffs, func(i, j int) bool {
		a, b := diffs[i].Key, diffs[j].Key
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Property < b.Property
	})

	return diffs
}

package decompound

import (
	"sort"
	"unicode/utf8"
)

// Rank orders decompositions in place: more terms first, then shorter first
// term. Decompositions with equal keys keep their relative order.
func Rank(ds []Decomposition) {
	sort.SliceStable(ds, func(i, j int) bool {
		if len(ds[i]) != len(ds[j]) {
			return len(ds[i]) > len(ds[j])
		}
		return firstTermLength(ds[i]) < firstTermLength(ds[j])
	})
}

func firstTermLength(d Decomposition) int {
	if len(d) == 0 {
		return 0
	}
	return utf8.RuneCountInString(d[0])
}

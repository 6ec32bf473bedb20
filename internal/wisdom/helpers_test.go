package wisdom

import "sort"

// keysOf returns the keys of an enum set in a stable order.
func keysOf[K ~string](set map[K]bool) []K {
	keys := make([]K, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

package decoder

import "math/bits"

// closestMatch finds the entry in table nearest by Hamming distance to any
// of targets (there are normally two: the two redundant readings of a QR
// format/version field), used to recover format and version info through a
// handful of flipped module bits. An exact match short-circuits
// immediately; otherwise it returns the index of the smallest-distance
// entry found and that distance. table is assumed non-empty.
func closestMatch(table []int, targets ...int) (index, difference int) {
	difference = 33 // one worse than any possible distance between ints this wide
	for i, entry := range table {
		for _, target := range targets {
			if entry == target {
				return i, 0
			}
			if d := bits.OnesCount(uint(entry ^ target)); d < difference {
				index, difference = i, d
			}
		}
	}
	return index, difference
}

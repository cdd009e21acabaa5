// Package patternmatch implements the run-length variance scoring routine
// shared by row-based (1D) barcode readers. It knows nothing about any
// particular symbology: callers record a sequence of black/white run
// lengths from a scanned row and compare them against a candidate
// reference pattern.
package patternmatch

import (
	"math"

	symdecode "github.com/joshgraham/symdecode"
	"github.com/joshgraham/symdecode/bitutil"
)

// RecordPattern records the widths of successive runs of black and white
// pixels in row starting at start, filling all of counters. The first
// recorded run's color is whatever pixel start holds.
func RecordPattern(row *bitutil.BitArray, start int, counters []int) error {
	for i := range counters {
		counters[i] = 0
	}
	end := row.Size()
	if start >= end {
		return symdecode.ErrNotFound
	}

	runIndex := 0
	isWhite := !row.Get(start)
	for i := start; i < end; i++ {
		if row.Get(i) == isWhite {
			runIndex++
			if runIndex == len(counters) {
				return nil
			}
			counters[runIndex] = 1
			isWhite = !isWhite
			continue
		}
		counters[runIndex]++
	}

	if runIndex == len(counters)-1 {
		return nil // the final run ran off the end of the row, which is fine
	}
	return symdecode.ErrNotFound
}

// RecordPatternInReverse walks backward from start to find where a pattern
// of len(counters) runs begins, then records it forward from there. Used
// when a reader has located a symbol's trailing edge before its leading
// edge.
func RecordPatternInReverse(row *bitutil.BitArray, start int, counters []int) error {
	transitionsNeeded := len(counters)
	last := row.Get(start)
	for start > 0 && transitionsNeeded >= 0 {
		start--
		if row.Get(start) != last {
			transitionsNeeded--
			last = !last
		}
	}
	if transitionsNeeded >= 0 {
		return symdecode.ErrNotFound
	}
	return RecordPattern(row, start+1, counters)
}

// Variance determines how closely a sequence of observed run widths matches
// a target pattern, expressed as reference units rather than pixels. It
// returns the ratio of total variance to the total observed width, or +Inf
// if any individual run is farther from its expected width than
// maxIndividualVariance times that expected width, or if the observed total
// is shorter than the pattern calls for.
//
// Callers normally reject a candidate whose Variance exceeds some
// maxAverageVariance threshold, and among surviving candidates pick the one
// with the lowest score; a tie is treated as no match.
func Variance(counters []int, pattern []int, maxIndividualVariance float64) float64 {
	total, patternLength := sumInts(counters), sumInts(pattern)
	if total < patternLength {
		return math.Inf(1)
	}

	unitWidth := float64(total) / float64(patternLength)

	var totalVariance float64
	for i, count := range counters {
		expected := float64(pattern[i]) * unitWidth
		v, ok := barVariance(float64(count), expected, maxIndividualVariance*expected)
		if !ok {
			return math.Inf(1)
		}
		totalVariance += v
	}
	return totalVariance / float64(total)
}

// barVariance returns the absolute gap between an observed run width and
// its scaled expected width, and whether that gap is within maxVariance.
func barVariance(observed, expected, maxVariance float64) (variance float64, ok bool) {
	variance = math.Abs(observed - expected)
	return variance, variance <= maxVariance
}

func sumInts(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum
}

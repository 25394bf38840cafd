package reconcile

// LongestIncreasingSubsequence returns the values forming the longest
// strictly-increasing subsequence of values, treating any entry < 0 as
// "no value at this position" (this package's stand-in for the original's
// Option<usize>) and skipping it. Ported from
// original_source/src/render/base/keyed_list.rs's
// longest_increasing_subsequence (itself credited there to
// github.com/axelf4/lis): patience-sorting with a predecessor array,
// O(n log n).
func LongestIncreasingSubsequence(values []int) []int {
	var filtered []int
	for _, v := range values {
		if v >= 0 {
			filtered = append(filtered, v)
		}
	}
	positions := lisPositions(filtered)
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = filtered[p]
	}
	return out
}

// lisPositions returns the indices into values (ascending) that make up a
// longest strictly-increasing subsequence of values.
func lisPositions(values []int) []int {
	n := len(values)
	if n == 0 {
		return nil
	}

	// tails[k] holds the index (into values) of the smallest tail value of
	// any increasing subsequence of length k+1 found so far.
	tails := make([]int, 0, n)
	predecessors := make([]int, n)

	for i, v := range values {
		lo, hi := 0, len(tails)
		for lo < hi {
			mid := (lo + hi) / 2
			if values[tails[mid]] < v {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo > 0 {
			predecessors[i] = tails[lo-1]
		} else {
			predecessors[i] = -1
		}
		if lo == len(tails) {
			tails = append(tails, i)
		} else {
			tails[lo] = i
		}
	}

	length := len(tails)
	result := make([]int, length)
	k := tails[length-1]
	for i := length - 1; i >= 0; i-- {
		result[i] = k
		k = predecessors[k]
	}
	return result
}

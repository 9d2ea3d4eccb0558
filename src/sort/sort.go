package sort

import "errors"

var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Sorter is a sequence that can be ordered in place. Less must describe a
// total order over the elements.
type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

type IntArray []int

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

var sample = [...]int{3, 5, 2, 4, 33, 2, 1, 4, 10, 9, 5, 7, 6, 4, 3, 4}

// Sample returns a fresh copy of the demo input.
func Sample() []int {
	s := make([]int, len(sample))
	copy(s, sample[:])
	return s
}

// Bubble repeats full passes of adjacent swaps until a pass swaps nothing.
func Bubble(data Sorter) {
	n := data.Len()
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i < n-1; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				swapped = true
			}
		}
	}
}

// Insertion grows a sorted prefix, moving each new element left past the
// elements strictly greater than it. Equal elements keep their order.
func Insertion(data Sorter) {
	n := data.Len()
	for i := 1; i < n; i++ {
		for j := i; j > 0 && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

// Selection swaps the minimum of the unplaced remainder into each position
// in turn. It is not stable.
func Selection(data Sorter) {
	n := data.Len()
	for i := 0; i < n; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if data.Less(j, min) {
				min = j
			}
		}
		data.Swap(i, min)
	}
}

func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

package sort

import "fmt"

type Algorithm struct {
	Name   string
	Stable bool
	Sort   func(Sorter)
}

var algorithms = []Algorithm{
	{Name: "bubble", Stable: true, Sort: Bubble},
	{Name: "insertion", Stable: true, Sort: Insertion},
	{Name: "selection", Stable: false, Sort: Selection},
}

// Algorithms returns the known algorithms in display order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Ints sorts a in place and returns it.
func (a Algorithm) Ints(s []int) []int {
	a.Sort(IntArray(s))
	return s
}

// Sorted returns a sorted copy of s, leaving s untouched.
func (a Algorithm) Sorted(s []int) []int {
	c := make([]int, len(s))
	copy(c, s)
	return a.Ints(c)
}

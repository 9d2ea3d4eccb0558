package sort

// Counter wraps a Sorter and counts the comparisons and swaps made on it.
type Counter struct {
	Sorter
	Comparisons int64
	Swaps       int64
}

func NewCounter(data Sorter) *Counter {
	return &Counter{Sorter: data}
}

func (c *Counter) Less(i, j int) bool {
	c.Comparisons++
	return c.Sorter.Less(i, j)
}

func (c *Counter) Swap(i, j int) {
	c.Swaps++
	c.Sorter.Swap(i, j)
}

func (c *Counter) Reset() {
	c.Comparisons, c.Swaps = 0, 0
}

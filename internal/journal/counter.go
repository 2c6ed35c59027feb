package journal

// Counter is a frequency map that remembers first-insertion order, so that
// ties in mode() resolve to the label counted first.
type Counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// Len returns the number of distinct labels.
func (c *Counter) Len() int {
	return len(c.order)
}

// Labels returns the distinct labels in first-insertion order.
func (c *Counter) Labels() []string {
	return c.order
}

// Count returns the count for one label.
func (c *Counter) Count(label string) int {
	return c.counts[label]
}

// mode returns the first label to reach the maximum count, and that count.
// An empty counter returns ("", 0).
func (c *Counter) mode() (string, int) {
	best := ""
	bestCount := 0
	for _, label := range c.order {
		if c.counts[label] > bestCount {
			best = label
			bestCount = c.counts[label]
		}
	}
	return best, bestCount
}

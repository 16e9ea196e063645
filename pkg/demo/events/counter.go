package events

import (
	"sort"

	"github.com/sasha-s/go-deadlock"
)

// Counter tallies events by wire name. It is safe to share between parsers
// running concurrently.
type Counter struct {
	counts map[string]int
	mutex  deadlock.Mutex
}

func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
	}
}

func (c *Counter) Observe(name string, event interface{}) error {
	c.mutex.Lock()
	c.counts[name]++
	c.mutex.Unlock()
	return nil
}

func (c *Counter) Handler() UserMessageHandler {
	return Funcs(c.Observe)
}

func (c *Counter) Count(name string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.counts[name]
}

func (c *Counter) Total() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	total := 0
	for _, count := range c.counts {
		total += count
	}
	return total
}

// Counts returns a copy of the tallies.
func (c *Counter) Counts() map[string]int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	counts := make(map[string]int, len(c.counts))
	for name, count := range c.counts {
		counts[name] = count
	}
	return counts
}

func (c *Counter) Merge(other *Counter) {
	counts := other.Counts()

	c.mutex.Lock()
	for name, count := range counts {
		c.counts[name] += count
	}
	c.mutex.Unlock()
}

type Tally struct {
	Name  string
	Count int
}

// Sorted returns the tallies ordered by descending count, then name.
func (c *Counter) Sorted() []Tally {
	counts := c.Counts()

	tallies := make([]Tally, 0, len(counts))
	for name, count := range counts {
		tallies = append(tallies, Tally{Name: name, Count: count})
	}

	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Count != tallies[j].Count {
			return tallies[i].Count > tallies[j].Count
		}
		return tallies[i].Name < tallies[j].Name
	})
	return tallies
}

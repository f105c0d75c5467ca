// Package catalog holds the course catalog storage engine: a chained hash
// table keyed by course number, the line parser and batch validator that
// feed it, and the merge sort used for ordered listings.
package catalog

import (
	"fmt"

	"github.com/yigit/coursecatalog/internal/app/models"
)

const (
	// DefaultCapacity is the bucket count of a freshly created table.
	DefaultCapacity = 16
	// MaxLoadFactor is the size/capacity ratio above which the table grows.
	MaxLoadFactor = 0.7
	// growthFactor multiplies the capacity on every resize.
	growthFactor = 2
)

type bucket []models.Course

// Table is a hash table of courses with separate chaining. It is not safe
// for concurrent use; build it completely before sharing it.
type Table struct {
	buckets []bucket
	size    int
	resizes int
}

// Option configures a Table.
type Option func(*Table)

// WithInitialCapacity overrides DefaultCapacity. Values below 1 are ignored.
func WithInitialCapacity(capacity int) Option {
	return func(t *Table) {
		if capacity > 0 {
			t.buckets = make([]bucket, capacity)
		}
	}
}

// NewTable creates an empty table.
func NewTable(opts ...Option) *Table {
	t := &Table{buckets: make([]bucket, DefaultCapacity)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert adds a course or, when its number is already present, overwrites
// the stored title and prerequisites. The grow check runs before the insert.
func (t *Table) Insert(course models.Course) {
	if t.needGrow() {
		t.grow()
	}

	idx := HashIdentifier(course.ID, len(t.buckets))
	chain := t.buckets[idx]
	for i := range chain {
		if chain[i].ID == course.ID {
			chain[i].Title = course.Title
			chain[i].Prerequisites = course.Clone().Prerequisites
			return
		}
	}

	t.buckets[idx] = prepend(chain, course.Clone())
	t.size++
}

// Lookup returns a copy of the course stored under id.
func (t *Table) Lookup(id string) (models.Course, bool) {
	idx := HashIdentifier(id, len(t.buckets))
	for _, c := range t.buckets[idx] {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Course{}, false
}

// Contains reports whether a course with the given number is stored.
func (t *Table) Contains(id string) bool {
	_, ok := t.Lookup(id)
	return ok
}

// All returns copies of every stored course in bucket order, then chain order.
func (t *Table) All() []models.Course {
	out := make([]models.Course, 0, t.size)
	for _, chain := range t.buckets {
		for _, c := range chain {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Len returns the number of stored courses.
func (t *Table) Len() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table) Capacity() int { return len(t.buckets) }

// Resizes returns how many times the table has grown.
func (t *Table) Resizes() int { return t.resizes }

// LoadFactor returns size divided by capacity.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// Stats summarises bucket occupancy.
type Stats struct {
	Size          int     `json:"size"`
	Capacity      int     `json:"capacity"`
	LoadFactor    float64 `json:"loadFactor"`
	Resizes       int     `json:"resizes"`
	UsedBuckets   int     `json:"usedBuckets"`
	LongestChain  int     `json:"longestChain"`
	MaxLoadFactor float64 `json:"maxLoadFactor"`
}

// Stats reports occupancy figures for diagnostics.
func (t *Table) Stats() Stats {
	s := Stats{
		Size:          t.size,
		Capacity:      len(t.buckets),
		LoadFactor:    t.LoadFactor(),
		Resizes:       t.resizes,
		MaxLoadFactor: MaxLoadFactor,
	}
	for _, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}
	return s
}

func (t *Table) needGrow() bool {
	return t.LoadFactor() > MaxLoadFactor
}

// grow rehashes every course into twice as many buckets. The recount must
// match the old size; a mismatch means the table is corrupt.
func (t *Table) grow() {
	old := t.buckets
	t.buckets = make([]bucket, len(old)*growthFactor)

	count := 0
	for _, chain := range old {
		// walk back to front so relinked chains keep most-recent-first order
		for i := len(chain) - 1; i >= 0; i-- {
			idx := HashIdentifier(chain[i].ID, len(t.buckets))
			t.buckets[idx] = prepend(t.buckets[idx], chain[i])
			count++
		}
	}

	if count != t.size {
		panic(fmt.Sprintf("catalog: rehash counted %d courses, expected %d", count, t.size))
	}
	t.resizes++
}

func prepend(chain bucket, c models.Course) bucket {
	chain = append(chain, models.Course{})
	copy(chain[1:], chain)
	chain[0] = c
	return chain
}

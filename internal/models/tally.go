package models

// Tally counts statuses in the order they were first seen.
type Tally struct {
	counts map[Status]int
	order  []Status
}

func NewTally() *Tally {
	return &Tally{
		counts: make(map[Status]int),
	}
}

func (t *Tally) Add(status Status) {
	if _, seen := t.counts[status]; !seen {
		t.order = append(t.order, status)
	}
	t.counts[status]++
}

func (t *Tally) Count(status Status) int {
	return t.counts[status]
}

func (t *Tally) Has(status Status) bool {
	return t.counts[status] > 0
}

func (t *Tally) Statuses() []Status {
	statuses := make([]Status, len(t.order))
	copy(statuses, t.order)
	return statuses
}

func (t *Tally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}
	return total
}

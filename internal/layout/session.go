package layout

import "time"

// span is an inclusive [lo, hi] range of extents.
type span struct {
	lo, hi int
}

func (r span) contains(v int) bool {
	return v >= r.lo && v <= r.hi
}

func (r span) pair() [2]int {
	return [2]int{r.lo, r.hi}
}

// session is the state of one drag, from Begin to End.
type session struct {
	origin               Point
	prevStart, nextStart int
	full, split          int
	prevRange, nextRange span
	accepted, rejected   int
	started              time.Time
	release              func()
}

package check

// IgnoredKey is the tally bucket for items excluded by the filter.
const IgnoredKey = "ignored"

// Tally counts classification outcomes per label for the summary line.
type Tally map[string]int

func NewTally() Tally {
	return make(Tally)
}

func (t Tally) Inc(key string) {
	t[key]++
}

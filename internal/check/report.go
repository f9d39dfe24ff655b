package check

import (
	"fmt"
	"sort"
	"strings"
)

// Result is one classified item: its severity and the message body without
// the severity prefix. The prefix is added uniformly when details are
// rendered.
type Result struct {
	Status  Status
	Message string
}

// Report collects everything one run produced for a single mode.
type Report struct {
	// Label names the item kind in the summary line, e.g. "Adapters".
	Label   string
	Total   int
	Results []Result
	Tally   Tally
}

// Overall is the worst status among all emitted results. A run where every
// item was filtered out (or the host simply has none) is healthy, so an
// empty result set yields OK.
func (r Report) Overall() Status {
	worst := OK
	for _, res := range r.Results {
		worst = Worst(worst, res.Status)
	}
	return worst
}

// Summary renders the one-line overview: total item count followed by the
// tally, keys sorted alphabetically for stable output.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d", r.Label, r.Total)

	keys := make([]string, 0, len(r.Tally))
	for k := range r.Tally {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "; %s: %d", k, r.Tally[k])
	}
	return b.String()
}

// Details renders one line per result in processing order, each prefixed
// with its severity name.
func (r Report) Details() string {
	lines := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		lines = append(lines, res.Status.String()+" "+res.Message)
	}
	return strings.Join(lines, "\n")
}

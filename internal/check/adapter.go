package check

import "fmt"

// adapterStatus maps the raw adapter status string to a severity. Any
// status outside this table is reported as UNKNOWN, not treated as an
// error.
var adapterStatus = map[string]Status{
	"online":  OK,
	"unbound": Warning,
	"unknown": Critical,
	"offline": Critical,
}

// ClassifyAdapters evaluates every host bus adapter in input order. The
// filter sees three candidate strings per adapter (device, model and key,
// each prefixed with its kind) so patterns can target any of them.
func ClassifyAdapters(adapters []Adapter, filter *Filter) ([]Result, Tally) {
	var results []Result
	tally := NewTally()

	for _, a := range adapters {
		if !filter.Allowed("device:"+a.Device, "model:"+a.Model, "key:"+a.Key) {
			tally.Inc(IgnoredKey)
			continue
		}

		status, ok := adapterStatus[a.Status]
		if !ok {
			status = Unknown
		}
		tally.Inc(a.Status)
		results = append(results, Result{
			Status:  status,
			Message: fmt.Sprintf("%s %s (%s)", a.Model, a.Device, a.Status),
		})
	}

	return results, tally
}

package check

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// displayNameSanitizer strips everything outside word characters, space,
// brackets, parentheses, underscore, hyphen and period. Display names are
// free text entered on the vSphere side and end up in plugin output.
var displayNameSanitizer = regexp.MustCompile(`[^][\w _().-]`)

// SanitizeDisplayName reduces a LUN display name to the character set safe
// for plugin output and filter matching.
func SanitizeDisplayName(name string) string {
	return displayNameSanitizer.ReplaceAllString(name, "")
}

// ClassifyLuns evaluates every SCSI LUN in input order. The slot label in
// each message comes from the topology index; a LUN missing from the index
// means the snapshot is internally inconsistent and the whole run fails
// rather than reporting a guessed slot.
//
// A LUN whose operational state contains "degraded" is WARNING regardless
// of the remaining tokens; this takes precedence over the first-token
// check on purpose.
func ClassifyLuns(luns []Lun, index map[string]string, filter *Filter) ([]Result, Tally, error) {
	var results []Result
	tally := NewTally()

	for _, l := range luns {
		name := SanitizeDisplayName(l.DisplayName)

		if !filter.Allowed(name) {
			tally.Inc(IgnoredKey)
			continue
		}

		slot, ok := index[discKey(l.Key)]
		if !ok {
			return nil, nil, fmt.Errorf("lun %s (key %s) not referenced by the scsi topology", l.CanonicalName, l.Key)
		}

		state := strings.Join(l.OperationalState, "-")
		switch {
		case slices.Contains(l.OperationalState, "degraded"):
			tally.Inc("warning")
			results = append(results, Result{
				Status:  Warning,
				Message: fmt.Sprintf("LUN:%s %s degraded: %s", slot, name, state),
			})
		case len(l.OperationalState) > 0 && l.OperationalState[0] == "ok":
			tally.Inc("ok")
			results = append(results, Result{
				Status:  OK,
				Message: fmt.Sprintf("LUN:%s %s state: %s", slot, name, state),
			})
		default:
			tally.Inc("critical")
			results = append(results, Result{
				Status:  Critical,
				Message: fmt.Sprintf("LUN:%s %s state: %s", slot, name, state),
			})
		}
	}

	return results, tally, nil
}

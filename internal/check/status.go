package check

import "fmt"

// Status is the monitoring-framework severity of a single item or of a
// whole run.
type Status int

const (
	OK Status = iota
	Warning
	Critical
	Unknown
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	case Unknown:
		return "UNKNOWN"
	}
	return "UNKNOWN"
}

// ExitCode maps a status to the plugin exit code understood by Nagios
// compatible schedulers.
func (s Status) ExitCode() int {
	switch s {
	case OK:
		return 0
	case Warning:
		return 1
	case Critical:
		return 2
	}
	return 3
}

// rank orders statuses for aggregation. CRITICAL outranks UNKNOWN so that
// a run containing both always reports CRITICAL.
func (s Status) rank() int {
	switch s {
	case OK:
		return 0
	case Warning:
		return 1
	case Unknown:
		return 2
	case Critical:
		return 3
	}
	return 2
}

// Worst returns the highest-ranked status of the given set, OK when the
// set is empty.
func Worst(statuses ...Status) Status {
	worst := OK
	for _, s := range statuses {
		if s.rank() > worst.rank() {
			worst = s
		}
	}
	return worst
}

// ParseStatus converts a status name as accepted on the command line.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "OK":
		return OK, nil
	case "WARNING":
		return Warning, nil
	case "CRITICAL":
		return Critical, nil
	case "UNKNOWN":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown status %q", name)
}

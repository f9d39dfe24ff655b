// Package output terminates the check in the way Nagios-compatible
// schedulers expect: a service output line, optional long output and an
// exit code encoding the severity.
package output

import (
	"fmt"

	nagios "github.com/atc0005/go-nagios"

	"github.com/virtomon/check-vsphere-storage/internal/check"
)

const shortName = "VSPHERE-STORAGE"

// Apply fills a plugin with the outcome of a run. Split from Exit so tests
// can inspect the plugin without the process terminating.
func Apply(p *nagios.Plugin, status check.Status, summary, details string) {
	switch status {
	case check.OK:
		p.ExitStatusCode = nagios.StateOKExitCode
	case check.Warning:
		p.ExitStatusCode = nagios.StateWARNINGExitCode
	case check.Critical:
		p.ExitStatusCode = nagios.StateCRITICALExitCode
	default:
		p.ExitStatusCode = nagios.StateUNKNOWNExitCode
	}

	p.ServiceOutput = fmt.Sprintf("%s %s - %s", shortName, status, summary)
	p.LongServiceOutput = details
}

// Exit reports the outcome and ends the process. This is the single
// externally visible side effect of a run.
func Exit(status check.Status, summary, details string) {
	p := nagios.NewPlugin()
	Apply(p, status, summary, details)
	p.ReturnCheckResults()
}

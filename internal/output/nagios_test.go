package output

import (
	"testing"

	nagios "github.com/atc0005/go-nagios"
	"github.com/stretchr/testify/assert"

	"github.com/virtomon/check-vsphere-storage/internal/check"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		status      check.Status
		summary     string
		details     string
		wantExit    int
		wantOutput  string
		wantDetails string
	}{
		{
			name:       "ok",
			status:     check.OK,
			summary:    "Adapters: 2; online: 2",
			details:    "OK A vmhba0 (online)\nOK B vmhba1 (online)",
			wantExit:   nagios.StateOKExitCode,
			wantOutput: "VSPHERE-STORAGE OK - Adapters: 2; online: 2",
			wantDetails: "OK A vmhba0 (online)\n" +
				"OK B vmhba1 (online)",
		},
		{
			name:       "warning",
			status:     check.Warning,
			summary:    "LUNs: 1; warning: 1",
			wantExit:   nagios.StateWARNINGExitCode,
			wantOutput: "VSPHERE-STORAGE WARNING - LUNs: 1; warning: 1",
		},
		{
			name:       "critical",
			status:     check.Critical,
			summary:    "Adapters: 1; offline: 1",
			wantExit:   nagios.StateCRITICALExitCode,
			wantOutput: "VSPHERE-STORAGE CRITICAL - Adapters: 1; offline: 1",
		},
		{
			name:       "unknown",
			status:     check.Unknown,
			summary:    "host esx1 not found",
			wantExit:   nagios.StateUNKNOWNExitCode,
			wantOutput: "VSPHERE-STORAGE UNKNOWN - host esx1 not found",
		},
		{
			name:       "out of range maps to unknown",
			status:     check.Status(42),
			summary:    "weird",
			wantExit:   nagios.StateUNKNOWNExitCode,
			wantOutput: "VSPHERE-STORAGE UNKNOWN - weird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := nagios.NewPlugin()
			Apply(p, tt.status, tt.summary, tt.details)

			assert.Equal(t, tt.wantExit, p.ExitStatusCode)
			assert.Equal(t, tt.wantOutput, p.ServiceOutput)
			assert.Equal(t, tt.wantDetails, p.LongServiceOutput)
		})
	}
}

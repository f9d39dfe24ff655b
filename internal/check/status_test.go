package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{OK, "OK"},
		{Warning, "WARNING"},
		{Critical, "CRITICAL"},
		{Unknown, "UNKNOWN"},
		{Status(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.String())
	}
}

func TestStatusExitCode(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{OK, 0},
		{Warning, 1},
		{Critical, 2},
		{Unknown, 3},
		{Status(42), 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.ExitCode())
	}
}

func TestWorst(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{name: "empty is OK", statuses: nil, want: OK},
		{name: "single ok", statuses: []Status{OK}, want: OK},
		{name: "warning beats ok", statuses: []Status{OK, Warning, OK}, want: Warning},
		{name: "unknown beats warning", statuses: []Status{Warning, Unknown}, want: Unknown},
		{name: "critical beats warning", statuses: []Status{OK, Critical, Warning}, want: Critical},
		{name: "critical beats unknown", statuses: []Status{Unknown, Critical}, want: Critical},
		{name: "critical beats unknown regardless of order", statuses: []Status{Critical, Unknown}, want: Critical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Worst(tt.statuses...))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for name, want := range map[string]Status{
		"OK":       OK,
		"WARNING":  Warning,
		"CRITICAL": Critical,
		"UNKNOWN":  Unknown,
	} {
		got, err := ParseStatus(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("ok")
	assert.Error(t, err)
	_, err = ParseStatus("FATAL")
	assert.Error(t, err)
}

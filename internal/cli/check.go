package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"

	"github.com/virtomon/check-vsphere-storage/internal/check"
	"github.com/virtomon/check-vsphere-storage/internal/output"
	"github.com/virtomon/check-vsphere-storage/internal/vsphere"
	"github.com/virtomon/check-vsphere-storage/pkg/log"
)

const (
	ModeAdapter = "adapter"
	ModeLun     = "lun"
)

var (
	legalModes    = []string{ModeAdapter, ModeLun}
	legalStatuses = []string{"OK", "WARNING", "CRITICAL", "UNKNOWN"}
)

type CheckOptions struct {
	GlobalOptions

	Host             string
	Mode             string
	MaintenanceState string
	Allow            []string
	Deny             []string
}

func DefaultCheckOptions() *CheckOptions {
	return &CheckOptions{
		GlobalOptions:    DefaultGlobalOptions(),
		MaintenanceState: "UNKNOWN",
	}
}

func NewCmdCheck() *cobra.Command {
	o := DefaultCheckOptions()
	cmd := &cobra.Command{
		Use:   "check --vihost NAME --mode (adapter|lun)",
		Short: "Check the storage subsystem of one host.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CheckOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Host, "vihost", "H", o.Host, "Name of the host to check")
	fs.StringVarP(&o.Mode, "mode", "m", o.Mode, fmt.Sprintf("What to check. One of: (%s).", strings.Join(legalModes, ", ")))
	fs.StringVar(&o.MaintenanceState, "maintenance-state", o.MaintenanceState,
		fmt.Sprintf("Status to report when the host is in maintenance. One of: (%s).", strings.Join(legalStatuses, ", ")))
	fs.StringArrayVar(&o.Allow, "allow", o.Allow, "Regex an item must match to be checked; repeatable")
	fs.StringArrayVar(&o.Deny, "deny", o.Deny, "Regex excluding an item from the check; repeatable, wins over --allow")
}

func (o *CheckOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CheckOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	if o.Host == "" {
		return errors.New("--vihost is required")
	}
	if !funk.Contains(legalModes, o.Mode) {
		return fmt.Errorf("mode must be one of %s", strings.Join(legalModes, ", "))
	}
	if !funk.Contains(legalStatuses, o.MaintenanceState) {
		return fmt.Errorf("maintenance-state must be one of %s", strings.Join(legalStatuses, ", "))
	}
	return nil
}

// Run performs the check and terminates the process through the reporting
// sink. Classification itself is pure; the run helper returns the outcome
// so that the one exit side effect sits here at the top.
func (o *CheckOptions) Run(ctx context.Context, args []string) error {
	if lvl, err := zap.ParseAtomicLevel(o.LogLevel); err == nil {
		logger := log.InitLog(lvl)
		defer func() { _ = logger.Sync() }()
		zap.ReplaceGlobals(logger)
	}

	status, summary, details := o.run(ctx)
	output.Exit(status, summary, details)
	return nil
}

func (o *CheckOptions) run(ctx context.Context) (check.Status, string, string) {
	// Bad patterns abort before anything is fetched or classified.
	filter, err := check.NewFilter(o.Allow, o.Deny)
	if err != nil {
		return check.Unknown, fmt.Sprintf("configuration error: %v", err), ""
	}
	maintenanceState, _ := check.ParseStatus(o.MaintenanceState)

	client, err := vsphere.Connect(ctx, o.Config())
	if err != nil {
		return check.Unknown, fmt.Sprintf("connection error: %v", err), ""
	}
	defer client.Close(ctx)

	host, err := client.FindHost(ctx, o.Host)
	if err != nil {
		if errors.Is(err, vsphere.ErrHostNotFound) {
			return check.Unknown, fmt.Sprintf("host %s not found", o.Host), ""
		}
		return check.Unknown, err.Error(), ""
	}

	// Planned maintenance must not page anyone; skip the storage fetch
	// entirely and report the configured status.
	if host.InMaintenanceMode {
		return maintenanceState, fmt.Sprintf("host %s is in maintenance", o.Host), ""
	}

	snap, err := client.StorageSnapshot(ctx, host)
	if err != nil {
		return check.Unknown, err.Error(), ""
	}

	var report check.Report
	switch o.Mode {
	case ModeAdapter:
		results, tally := check.ClassifyAdapters(snap.Adapters, filter)
		report = check.Report{Label: "Adapters", Total: len(snap.Adapters), Results: results, Tally: tally}
	case ModeLun:
		index := check.BuildLunIndex(snap.Topology)
		results, tally, err := check.ClassifyLuns(snap.Luns, index, filter)
		if err != nil {
			return check.Unknown, err.Error(), ""
		}
		report = check.Report{Label: "LUNs", Total: len(snap.Luns), Results: results, Tally: tally}
	}

	return report.Overall(), report.Summary(), report.Details()
}

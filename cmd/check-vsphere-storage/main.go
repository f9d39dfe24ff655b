package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/virtomon/check-vsphere-storage/internal/cli"
	"github.com/virtomon/check-vsphere-storage/pkg/log"
)

func main() {
	logger := log.InitLog(zap.NewAtomicLevelAt(zapcore.WarnLevel))
	defer func() { _ = logger.Sync() }()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	command := NewCheckVsphereStorageCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCheckVsphereStorageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check_vsphere_storage [flags]",
		Short: "Nagios-compatible check of the storage subsystem of a vSphere host.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdCheck())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}

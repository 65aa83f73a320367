package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "mkibft",
		Short: "Build and inspect iSCSI Boot Firmware Tables",
		Long: `mkibft projects ibft.* settings into an iSCSI Boot Firmware Table (iBFT),
which a boot-time iSCSI initiator reads to find its initiator, NIC and target
parameters.

Settings are taken, in order of precedence, from flags, a YAML file, a
loader.conf file, a configuration directory and a kernel command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log ignored settings and other details")
	root.AddCommand(newBuildCmd())
	root.AddCommand(newDumpCmd())
	root.AddCommand(newVerifyCmd())
	return root
}

// readTable reads a table from path, or from stdin if path is "-".
func readTable(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gokrazy/ibft"
	"github.com/gokrazy/ibft/ibftflag"
	"github.com/gokrazy/ibft/kenv"
)

type buildOptions struct {
	config     string
	loaderConf string
	cmdline    string
	dir        string
	hostname   string
	output     string
}

func newBuildCmd() *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a table and write it to --output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store(cmd)
			if err != nil {
				return err
			}
			return runBuild(cmd, store, opts.output)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.config, "config", "c", "", "YAML file with ibft.* settings")
	fs.StringVar(&opts.loaderConf, "loader-conf", "", "loader.conf(5) style file with ibft.* settings")
	fs.StringVar(&opts.cmdline, "cmdline", "", "kernel command line file, e.g. "+kenv.DefaultCmdlinePath)
	fs.StringVar(&opts.dir, "dir", "", "configuration directory holding one file per setting")
	fs.StringVar(&opts.hostname, "hostname", "", "read <dir>/hosts/<hostname> before <dir>")
	fs.StringVarP(&opts.output, "output", "o", "-", `output file, "-" for stdout`)
	ibftflag.RegisterPflags(fs)
	return cmd
}

// store assembles the configured sources, highest precedence first.
func (o *buildOptions) store(cmd *cobra.Command) (kenv.Store, error) {
	chain := kenv.Chain{ibftflag.Store(cmd.Flags())}
	if o.config != "" {
		m, err := kenv.LoadYAML(o.config)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	if o.loaderConf != "" {
		m, err := kenv.LoadLoaderConf(o.loaderConf)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	if o.dir != "" {
		if o.hostname != "" {
			chain = append(chain, kenv.HostnameSpecific(o.dir, o.hostname))
		} else {
			chain = append(chain, kenv.Dir{Path: o.dir})
		}
	} else if o.hostname != "" {
		return nil, fmt.Errorf("--hostname requires --dir")
	}
	if o.cmdline != "" {
		m, err := kenv.ReadCmdline(o.cmdline)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	return chain, nil
}

func runBuild(cmd *cobra.Command, store kenv.Store, output string) error {
	b := &ibft.Builder{
		Store: store,
		Log:   logrus.StandardLogger(),
	}
	table, ok := b.Build()
	if !ok {
		logrus.Infof("iBFT disabled by %s, not writing a table", ibft.KeyDisabled)
		return nil
	}
	if output == "-" {
		if _, err := cmd.OutOrStdout().Write(table); err != nil {
			return err
		}
	} else if err := os.WriteFile(output, table, 0644); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"bytes":  len(table),
		"output": output,
	}).Info("iBFT written")
	return nil
}

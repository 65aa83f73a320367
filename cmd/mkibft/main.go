// mkibft builds an iSCSI Boot Firmware Table from kenv-style settings (kernel
// command line, loader.conf, YAML, per-key files and flags) and inspects
// existing tables.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

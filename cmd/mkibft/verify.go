package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gokrazy/ibft"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file|->",
		Short: "Check signature, length and checksum of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}
			if err := ibft.Verify(b); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}

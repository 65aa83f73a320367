package main

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gokrazy/ibft"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file|->",
		Short: "Print the contents of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}
			t, err := ibft.Parse(b)
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), t)
		},
	}
}

func cstring(b []byte) string { return strings.TrimRight(string(b), "\x00") }

func dump(w io.Writer, t *ibft.Table) error {
	h := t.Header
	c := t.Control
	fmt.Fprintf(w, "header: signature %s, length %d, revision %d, checksum 0x%02x, oem %s/%s\n",
		h.Signature[:], h.Length, h.Revision, h.Checksum, cstring(h.OEMID[:]), cstring(h.OEMTableID[:]))
	fmt.Fprintf(w, "control: initiator@%d nic0@%d target0@%d nic1@%d target1@%d\n",
		c.InitiatorOffset, c.NIC0Offset, c.Target0Offset, c.NIC1Offset, c.Target1Offset)

	if i := t.Initiator; i != nil {
		name, err := t.Text(i.NameLength, i.NameOffset)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "initiator: flags 0x%02x, name %q\n", i.Flags, name)
	}
	for idx, n := range []*ibft.NIC{t.NIC0, t.NIC1} {
		if n == nil {
			continue
		}
		host, err := t.Text(n.HostNameLength, n.HostNameOffset)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "nic%d: flags 0x%02x, ip %s/%d, vlan %d, mac %s, host %q\n",
			idx, n.Flags, net.IP(n.IP[:]), n.MaskPrefix, n.VLAN, net.HardwareAddr(n.MAC[:]), host)
	}
	for idx, tg := range []*ibft.Target{t.Target0, t.Target1} {
		if tg == nil {
			continue
		}
		name, err := t.Text(tg.NameLength, tg.NameOffset)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "target%d: flags 0x%02x, ip %s, port %d, lun %d, name %q\n",
			idx, tg.Flags, net.IP(tg.IP[:]), tg.Port, tg.LUN, name)
	}
	return nil
}

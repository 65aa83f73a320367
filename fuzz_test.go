package ibft_test

import (
	"testing"

	"github.com/gokrazy/ibft"
	"github.com/gokrazy/ibft/kenv"
)

func FuzzBuild(f *testing.F) {
	f.Add("iqn.test.initiator", "10.0.0.5", "24", "aa:bb:cc:dd:ee:ff", "3260", "0")
	f.Add("", "fe80:0:0:0:0:0:0:1", "64", "aa:bb", "65536", "18446744073709551616")
	f.Add("iq\x00n", "not-an-ip", "-1", "", "x", " 7")
	f.Fuzz(func(t *testing.T, name, addr, mask, mac, port, lun string) {
		table, ok := ibft.Build(kenv.Map{
			ibft.KeyInitiatorName: name,
			ibft.KeyNICHostName:   name,
			ibft.KeyNICAddr:       addr,
			ibft.KeyNICMask:       mask,
			ibft.KeyNICVLAN:       port,
			ibft.KeyNICMAC:        mac,
			ibft.KeyTargetName:    name,
			ibft.KeyTargetAddr:    addr,
			ibft.KeyTargetPort:    port,
			ibft.KeyTargetLUN:     lun,
		})
		if !ok {
			t.Fatalf("Build() unexpectedly disabled")
		}
		parsed, err := ibft.Parse(table)
		if err != nil {
			t.Fatal(err)
		}
		if int(parsed.Header.Length) != len(table) {
			t.Fatalf("header length %d, table has %d bytes", parsed.Header.Length, len(table))
		}
		if got := parsed.Initiator.NameLength; got >= ibft.NameMax {
			t.Fatalf("initiator name length %d exceeds region", got)
		}
		if _, err := parsed.Text(parsed.Target0.NameLength, parsed.Target0.NameOffset); err != nil {
			t.Fatal(err)
		}
	})
}

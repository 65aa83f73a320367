// Package ibftflag exposes the iBFT settings as command line flags, so that
// tools can override what the configuration store provides.
package ibftflag

import (
	"github.com/spf13/pflag"

	"github.com/gokrazy/ibft"
	"github.com/gokrazy/ibft/kenv"
)

// setFlag accepts arbitrary key=value settings.
const setFlag = "set"

var flags = []struct {
	name  string
	key   string
	usage string
}{
	{"disabled", ibft.KeyDisabled, `disable the table (any value other than "" or "0")`},
	{"initiator", ibft.KeyInitiatorName, "initiator name, e.g. iqn.2010-01.example:host"},
	{"nic-host", ibft.KeyNICHostName, "host name of the boot NIC"},
	{"nic-addr", ibft.KeyNICAddr, "IPv4 (a.b.c.d) or IPv6 (eight hex groups) address of the boot NIC"},
	{"nic-mask", ibft.KeyNICMask, "subnet prefix length of the boot NIC"},
	{"nic-vlan", ibft.KeyNICVLAN, "VLAN tag of the boot NIC"},
	{"nic-mac", ibft.KeyNICMAC, "MAC address of the boot NIC, e.g. 52:54:00:12:34:56"},
	{"target", ibft.KeyTargetName, "target name, e.g. iqn.2010-01.example:disk"},
	{"target-addr", ibft.KeyTargetAddr, "IPv4 or IPv6 address of the target"},
	{"target-port", ibft.KeyTargetPort, "TCP port of the target (usually 3260)"},
	{"target-lun", ibft.KeyTargetLUN, "LUN to boot from"},
}

// RegisterPflags registers one flag per iBFT setting on fs, plus a repeatable
// --set key=value flag for settings by their store key.
func RegisterPflags(fs *pflag.FlagSet) {
	for _, f := range flags {
		fs.String(f.name, "", f.usage+" (overrides "+f.key+")")
	}
	fs.StringToString(setFlag, nil, "set a setting by key, e.g. --set ibft.nic_mask=24 (repeatable)")
}

// Store returns the settings explicitly given on the command line. Dedicated
// flags win over --set. Flags which were not registered via RegisterPflags
// are skipped.
func Store(fs *pflag.FlagSet) kenv.Map {
	m := make(kenv.Map)
	if fs.Changed(setFlag) {
		if set, err := fs.GetStringToString(setFlag); err == nil {
			for k, v := range set {
				m[k] = v
			}
		}
	}
	for _, f := range flags {
		fl := fs.Lookup(f.name)
		if fl == nil || !fl.Changed {
			continue
		}
		m[f.key] = fl.Value.String()
	}
	return m
}

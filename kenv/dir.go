package kenv

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Dir is a Store holding one file per key, e.g. <Path>/ibft.nic_addr. File
// contents are returned with surrounding white space removed.
type Dir struct {
	Path string

	// Fallback, if non-empty, is consulted for keys which have no file in
	// Path.
	Fallback string
}

// HostnameSpecific returns a Dir for <base>/hosts/<hostname> which falls back
// to base itself for keys not configured per host.
func HostnameSpecific(base, hostname string) Dir {
	return Dir{
		Path:     filepath.Join(base, "hosts", hostname),
		Fallback: base,
	}
}

func (d Dir) Lookup(key string) (string, bool) {
	if key == "" || strings.ContainsRune(key, filepath.Separator) || key == "." || key == ".." {
		return "", false
	}
	if v, ok := readKeyFile(d.Path, key); ok {
		return v, true
	}
	if d.Fallback == "" {
		return "", false
	}
	// fall back to global path
	return readKeyFile(d.Fallback, key)
}

func readKeyFile(dir, key string) (string, bool) {
	if dir == "" {
		return "", false
	}
	fn := filepath.Join(dir, key)
	b, err := os.ReadFile(fn)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", fn).Warn("ignoring unreadable setting")
		}
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

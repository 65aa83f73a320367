package kenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChain(t *testing.T) {
	c := Chain{
		Map{"ibft.nic_mask": "16"},
		nil,
		Map{"ibft.nic_mask": "24", "ibft.target_port": "3260"},
	}

	v, ok := c.Lookup("ibft.nic_mask")
	assert.True(t, ok)
	assert.Equal(t, "16", v)

	v, ok = c.Lookup("ibft.target_port")
	assert.True(t, ok)
	assert.Equal(t, "3260", v)

	_, ok = c.Lookup("ibft.target_lun")
	assert.False(t, ok)
}

func TestParseCmdline(t *testing.T) {
	got := ParseCmdline(`console=tty1 ro ibft.initiator="iqn.2010-01.example:host one" ibft.nic_mask=16 ibft.nic_mask=24` + "\n")
	want := Map{
		"console":        "tty1",
		"ro":             "",
		"ibft.initiator": "iqn.2010-01.example:host one",
		"ibft.nic_mask":  "24",
	}
	assert.Equal(t, want, got)
}

func TestReadCmdline(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cmdline")
	require.NoError(t, os.WriteFile(fn, []byte("root=/dev/sda2 ibft.target_addr=10.0.0.9\n"), 0644))

	m, err := ReadCmdline(fn)
	require.NoError(t, err)
	v, ok := m.Lookup("ibft.target_addr")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.9", v)

	_, err = ReadCmdline(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestDir(t *testing.T) {
	base := t.TempDir()
	d := HostnameSpecific(base, "bakery")
	require.NoError(t, os.MkdirAll(d.Path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "ibft.nic_addr"), []byte("10.0.0.1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "ibft.nic_mask"), []byte("8\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(d.Path, "ibft.nic_addr"), []byte("  10.0.0.5\n"), 0644))

	for _, tt := range []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"ibft.nic_addr", "10.0.0.5", true},
		{"ibft.nic_mask", "8", true},
		{"ibft.nic_vlan", "", false},
		{"../ibft.nic_mask", "", false},
		{"", "", false},
	} {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := d.Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYAML(t *testing.T) {
	m, err := ParseYAML([]byte(`
ibft:
  kenv:
    disabled:
  initiator: iqn.test.initiator
  nic_addr: 10.0.0.5
  target_port: 3260
  target_lun: &lun 0
other: *lun
`))
	require.NoError(t, err)
	want := Map{
		"ibft.kenv.disabled": "",
		"ibft.initiator":     "iqn.test.initiator",
		"ibft.nic_addr":      "10.0.0.5",
		"ibft.target_port":   "3260",
		"ibft.target_lun":    "0",
		"other":              "0",
	}
	assert.Equal(t, want, m)
}

func TestParseYAMLErrors(t *testing.T) {
	for _, doc := range []string{
		"- a\n- b\n",
		"ibft:\n  nic_addr: [1, 2]\n",
		"ibft: {\n",
	} {
		_, err := ParseYAML([]byte(doc))
		assert.Error(t, err, "ParseYAML(%q)", doc)
	}

	m, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestLoadYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "ibft.yml")
	require.NoError(t, os.WriteFile(fn, []byte("ibft.target: iqn.test.target\n"), 0644))
	m, err := LoadYAML(fn)
	require.NoError(t, err)
	assert.Equal(t, Map{"ibft.target": "iqn.test.target"}, m)

	_, err = LoadYAML(fn + ".missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLoaderConf(t *testing.T) {
	m, err := ParseLoaderConf(strings.NewReader(`
# iSCSI boot
ibft.initiator="iqn.2010-01.example:host one"   # trailing comment
ibft.nic_mask=24 # prefix
  ibft.kenv.disabled = "0"
`))
	require.NoError(t, err)
	want := Map{
		"ibft.initiator":     "iqn.2010-01.example:host one",
		"ibft.nic_mask":      "24",
		"ibft.kenv.disabled": "0",
	}
	assert.Equal(t, want, m)

	_, err = ParseLoaderConf(strings.NewReader("ibft.initiator=\"unterminated\n"))
	assert.Error(t, err)

	_, err = ParseLoaderConf(strings.NewReader("just words\n"))
	assert.Error(t, err)
}

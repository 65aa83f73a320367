package ibft

import (
	"github.com/sirupsen/logrus"

	"github.com/gokrazy/ibft/kenv"
)

// Settings consumed by Build.
const (
	// KeyDisabled disables the table if set to a non-empty value other
	// than "0".
	KeyDisabled = "ibft.kenv.disabled"

	KeyInitiatorName = "ibft.initiator"

	KeyNICHostName = "ibft.nic_host"
	KeyNICAddr     = "ibft.nic_addr"
	KeyNICMask     = "ibft.nic_mask"
	KeyNICVLAN     = "ibft.nic_vlan"
	KeyNICMAC      = "ibft.nic_mac"

	KeyTargetName = "ibft.target"
	KeyTargetAddr = "ibft.target_addr"
	KeyTargetPort = "ibft.target_port"
	KeyTargetLUN  = "ibft.target_lun"
)

// Keys lists all settings Build consumes.
var Keys = []string{
	KeyDisabled,
	KeyInitiatorName,
	KeyNICHostName,
	KeyNICAddr,
	KeyNICMask,
	KeyNICVLAN,
	KeyNICMAC,
	KeyTargetName,
	KeyTargetAddr,
	KeyTargetPort,
	KeyTargetLUN,
}

const (
	signature = "iBFT"
	oemID     = "ISBOOT"
	revision  = 1

	structVersion = 1
	activeFlags   = FlagBlockValid | FlagBootSelected
)

// Builder builds tables from the settings in Store. A Builder holds no state
// between builds and may be used concurrently.
type Builder struct {
	Store kenv.Store

	// Log receives debug messages about ignored settings. If nil,
	// logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

// Build is a convenience wrapper around (&Builder{Store: s}).Build().
func Build(s kenv.Store) ([]byte, bool) {
	return (&Builder{Store: s}).Build()
}

// Build returns a newly allocated, checksummed table, or false if the table
// was disabled via KeyDisabled.
func (b *Builder) Build() ([]byte, bool) {
	if v, ok := b.store().Lookup(KeyDisabled); ok && v != "" && v != "0" {
		b.log().WithField("key", KeyDisabled).Debug("iBFT disabled")
		return nil, false
	}

	l := DefaultLayout
	table := make([]byte, l.Size())
	b.buildHeader(table)
	b.buildControl(table)
	b.buildInitiator(table)
	b.buildNIC(table)
	b.buildTarget(table)
	table[checksumOffset] = Checksum(table)
	return table, true
}

func (b *Builder) store() kenv.Store {
	if b.Store != nil {
		return b.Store
	}
	return kenv.Map{}
}

func (b *Builder) log() logrus.FieldLogger {
	if b.Log != nil {
		return b.Log
	}
	return logrus.StandardLogger()
}

// lookup returns the parsed value of key. Settings which are absent or fail to
// parse yield false, in which case the caller keeps the field's default.
func lookup[T any](b *Builder, key string, parse func(string) (T, bool)) (T, bool) {
	var zero T
	s, ok := b.store().Lookup(key)
	if !ok {
		return zero, false
	}
	v, ok := parse(s)
	if !ok {
		b.log().WithFields(logrus.Fields{
			"key":   key,
			"value": s,
		}).Debug("ignoring malformed setting")
		return zero, false
	}
	return v, true
}

// embed copies the setting key into the string region and returns the
// length and offset to reference it with, or zeros if key is not set.
func (b *Builder) embed(table []byte, key, region string) (length, offset uint16) {
	s, ok := lookup(b, key, parseString)
	if !ok {
		return 0, 0
	}
	n := embedString(DefaultLayout.Slice(table, region), s)
	return uint16(n), DefaultLayout.Offset(region)
}

func structHeader(id uint8, region string, flags uint8) StructHeader {
	return StructHeader{
		ID:      id,
		Version: structVersion,
		Length:  uint16(DefaultLayout.mustRegion(region).Size),
		Index:   0,
		Flags:   flags,
	}
}

func (b *Builder) buildHeader(table []byte) {
	h := Header{
		Length:   uint32(DefaultLayout.Size()),
		Revision: revision,
		Checksum: 0, // computed last
	}
	copy(h.Signature[:], signature)
	putFixed(h.OEMID[:], oemID)
	putFixed(h.OEMTableID[:], oemID)
	put(DefaultLayout.Slice(table, RegionHeader), &h)
}

func (b *Builder) buildControl(table []byte) {
	c := Control{
		StructHeader:    structHeader(IDControl, RegionControl, 0),
		InitiatorOffset: DefaultLayout.Offset(RegionInitiator),
		NIC0Offset:      DefaultLayout.Offset(RegionNIC0),
		Target0Offset:   DefaultLayout.Offset(RegionTarget0),
		// secondary NIC and target are not supported
		NIC1Offset:    0,
		Target1Offset: 0,
	}
	put(DefaultLayout.Slice(table, RegionControl), &c)
}

func (b *Builder) buildInitiator(table []byte) {
	i := Initiator{
		StructHeader: structHeader(IDInitiator, RegionInitiator, activeFlags),
	}
	i.NameLength, i.NameOffset = b.embed(table, KeyInitiatorName, RegionInitiatorName)
	put(DefaultLayout.Slice(table, RegionInitiator), &i)
}

func (b *Builder) buildNIC(table []byte) {
	n := NIC{
		StructHeader: structHeader(IDNIC, RegionNIC0, activeFlags),
	}
	n.HostNameLength, n.HostNameOffset = b.embed(table, KeyNICHostName, RegionHostName)
	if ip, ok := lookup(b, KeyNICAddr, ParseIP); ok {
		n.IP = ip
	}
	if mask, ok := lookup(b, KeyNICMask, parseUint(8)); ok {
		n.MaskPrefix = uint8(mask)
	}
	if vlan, ok := lookup(b, KeyNICVLAN, parseUint(16)); ok {
		n.VLAN = uint16(vlan)
	}
	if mac, ok := lookup(b, KeyNICMAC, ParseMAC); ok {
		n.MAC = mac
	}
	put(DefaultLayout.Slice(table, RegionNIC0), &n)
}

func (b *Builder) buildTarget(table []byte) {
	t := Target{
		StructHeader: structHeader(IDTarget, RegionTarget0, activeFlags),
	}
	t.NameLength, t.NameOffset = b.embed(table, KeyTargetName, RegionTargetName)
	if ip, ok := lookup(b, KeyTargetAddr, ParseIP); ok {
		t.IP = ip
	}
	if port, ok := lookup(b, KeyTargetPort, parseUint(16)); ok {
		t.Port = uint16(port)
	}
	if lun, ok := lookup(b, KeyTargetLUN, parseUint(64)); ok {
		t.LUN = lun
	}
	// CHAP type, NIC index and the CHAP credentials stay zero.
	put(DefaultLayout.Slice(table, RegionTarget0), &t)
}

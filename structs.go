package ibft

// Structure IDs as defined by the iBFT specification.
const (
	IDControl   = uint8(1)
	IDInitiator = uint8(2)
	IDNIC       = uint8(3)
	IDTarget    = uint8(4)
)

// Structure flags.
const (
	FlagBlockValid = uint8(1 << 0)
	// FlagBootSelected marks the structure as selected for booting.
	FlagBootSelected = uint8(1 << 1)
)

// Header is the ACPI-style table header at offset 0. Length holds the total
// table size, which always fits into 16 bits; the upper half is zero, so a
// reader of only the first two (little-endian) length bytes sees the same
// value.
type Header struct {
	Signature  [4]byte
	Length     uint32
	Revision   uint8
	Checksum   uint8
	OEMID      [6]byte
	OEMTableID [8]byte
	Reserved   [24]byte
}

// checksumOffset is the byte offset of Header.Checksum within the table.
const checksumOffset = 9

// StructHeader starts every structure following the table header.
type StructHeader struct {
	ID      uint8
	Version uint8
	Length  uint16
	Index   uint8
	Flags   uint8
}

// Control holds the table offsets of all other structures. A zero offset
// means the structure is not present.
type Control struct {
	StructHeader
	// Extensions is always zero; a reader of only its first byte sees the
	// same value.
	Extensions      uint16
	InitiatorOffset uint16
	NIC0Offset      uint16
	Target0Offset   uint16
	NIC1Offset      uint16
	Target1Offset   uint16
}

type Initiator struct {
	StructHeader
	ISNS       [16]byte
	SLP        [16]byte
	PriRadius  [16]byte
	SecRadius  [16]byte
	NameLength uint16
	NameOffset uint16
}

type NIC struct {
	StructHeader
	IP         [16]byte
	MaskPrefix uint8
	Origin     uint8
	Gateway    [16]byte
	PriDNS     [16]byte
	SecDNS     [16]byte
	DHCP       [16]byte
	VLAN       uint16
	MAC        [6]byte
	// PCIBDF is the PCI location: bus (8 bits), device (5), function (3).
	PCIBDF         uint16
	HostNameLength uint16
	HostNameOffset uint16
}

type Target struct {
	StructHeader
	IP                  [16]byte
	Port                uint16
	LUN                 uint64
	CHAPType            uint8
	NICIndex            uint8
	NameLength          uint16
	NameOffset          uint16
	CHAPNameLength      uint16
	CHAPNameOffset      uint16
	CHAPSecretLength    uint16
	CHAPSecretOffset    uint16
	RevCHAPNameLength   uint16
	RevCHAPNameOffset   uint16
	RevCHAPSecretLength uint16
	RevCHAPSecretOffset uint16
}

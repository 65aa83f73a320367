// Package ibft assembles an iSCSI Boot Firmware Table (iBFT) from key/value
// settings of an early-boot configuration store, so that a boot-time iSCSI
// initiator can find its initiator, NIC and target parameters without a file
// system or network stack. Reading back a table is implemented as well.
//
// The resulting tables describe exactly one NIC and one target. Malformed
// settings never fail a build: the affected field keeps its zero value. CHAP
// credentials are laid out but never populated.
//
// All multi-byte integers are little-endian, whereas IP and MAC addresses are
// stored in network byte order. IPv4 addresses are stored as IPv4-mapped IPv6
// addresses (::ffff:a.b.c.d).
package ibft

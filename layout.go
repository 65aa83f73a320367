package ibft

import (
	"encoding/binary"
	"fmt"
)

// Region names of DefaultLayout.
const (
	RegionHeader        = "header"
	RegionControl       = "control"
	RegionInitiator     = "initiator"
	RegionNIC0          = "nic0"
	RegionTarget0       = "target0"
	RegionNIC1          = "nic1"
	RegionTarget1       = "target1"
	RegionInitiatorName = "initiator-name"
	RegionTargetName    = "target-name"
	RegionHostName      = "host-name"
	RegionCHAPUser      = "chap-user"
	RegionCHAPSecret    = "chap-secret"
)

const (
	// NameMax is the capacity of the initiator, target and host name
	// regions, including the terminating NUL byte.
	NameMax = 256

	// CHAPMax is the capacity of the CHAP user and secret regions.
	CHAPMax = 64

	// structAlign is the alignment the iBFT specification requires for the
	// start of every structure.
	structAlign = 8

	// maxTableSize is what the 16-bit length bookkeeping can address.
	maxTableSize = 0xffff
)

// A RegionSpec names a region and its size in bytes.
type RegionSpec struct {
	Name string
	Size int
}

// A Region is a named, fixed-size part of a table.
type Region struct {
	Name   string
	Offset int
	Size   int
}

// End returns the offset of the first byte after r.
func (r Region) End() int { return r.Offset + r.Size }

// Layout is an ordered list of regions. Every offset is derived from the
// sizes of the regions in front of it, so offsets stored in a table can never
// disagree with where a region actually is.
type Layout struct {
	regions []Region
	byName  map[string]int
	size    int
}

// NewLayout places specs one after another, starting each region at a
// multiple of align. It panics on duplicate names or if the resulting table
// does not fit the 16-bit length field.
func NewLayout(align int, specs ...RegionSpec) *Layout {
	if align < 1 {
		align = 1
	}
	l := &Layout{
		byName: make(map[string]int, len(specs)),
	}
	off := 0
	for _, s := range specs {
		if _, ok := l.byName[s.Name]; ok {
			panic(fmt.Sprintf("ibft: duplicate region %q", s.Name))
		}
		if rem := off % align; rem != 0 {
			off += align - rem
		}
		l.byName[s.Name] = len(l.regions)
		l.regions = append(l.regions, Region{
			Name:   s.Name,
			Offset: off,
			Size:   s.Size,
		})
		off += s.Size
	}
	if off > maxTableSize {
		panic(fmt.Sprintf("ibft: layout of %d bytes exceeds %d bytes", off, maxTableSize))
	}
	l.size = off
	return l
}

// DefaultLayout describes revision 1 tables: the header, the control
// structure, one initiator, one NIC and one target structure, zeroed space for
// a second NIC and target, and the string regions.
var DefaultLayout = NewLayout(structAlign,
	RegionSpec{RegionHeader, binary.Size(Header{})},
	RegionSpec{RegionControl, binary.Size(Control{})},
	RegionSpec{RegionInitiator, binary.Size(Initiator{})},
	RegionSpec{RegionNIC0, binary.Size(NIC{})},
	RegionSpec{RegionTarget0, binary.Size(Target{})},
	RegionSpec{RegionNIC1, binary.Size(NIC{})},
	RegionSpec{RegionTarget1, binary.Size(Target{})},
	RegionSpec{RegionInitiatorName, NameMax},
	RegionSpec{RegionTargetName, NameMax},
	RegionSpec{RegionHostName, NameMax},
	RegionSpec{RegionCHAPUser, CHAPMax},
	RegionSpec{RegionCHAPSecret, CHAPMax},
)

// Size returns the total table size in bytes.
func (l *Layout) Size() int { return l.size }

// Regions returns all regions in table order.
func (l *Layout) Regions() []Region {
	return append([]Region(nil), l.regions...)
}

// Region returns the region called name.
func (l *Layout) Region(name string) (Region, bool) {
	idx, ok := l.byName[name]
	if !ok {
		return Region{}, false
	}
	return l.regions[idx], true
}

func (l *Layout) mustRegion(name string) Region {
	r, ok := l.Region(name)
	if !ok {
		panic(fmt.Sprintf("ibft: unknown region %q", name))
	}
	return r
}

// Offset returns the table offset of the region called name, in the form
// stored in offset fields.
func (l *Layout) Offset(name string) uint16 {
	return uint16(l.mustRegion(name).Offset)
}

// Slice returns the part of table occupied by the region called name. table
// must be at least Size bytes long.
func (l *Layout) Slice(table []byte, name string) []byte {
	r := l.mustRegion(name)
	return table[r.Offset:r.End():r.End()]
}

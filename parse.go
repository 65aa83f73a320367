package ibft

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrSignature = errors.New("ibft: bad signature")
	ErrTruncated = errors.New("ibft: table truncated")
	ErrChecksum  = errors.New("ibft: checksum mismatch")
	ErrStructure = errors.New("ibft: invalid structure")
)

// Table is a decoded table. Structures whose control offset is zero are nil.
type Table struct {
	Header    Header
	Control   Control
	Initiator *Initiator
	NIC0      *NIC
	Target0   *Target
	NIC1      *NIC
	Target1   *Target

	raw []byte
}

// Verify checks the signature, length and checksum of the table in b.
func Verify(b []byte) error {
	_, _, err := verify(b)
	return err
}

func verify(b []byte) (Header, []byte, error) {
	var h Header
	hs := binary.Size(h)
	if len(b) < hs {
		return h, nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(b), hs)
	}
	if err := binary.Read(bytes.NewReader(b[:hs]), binary.LittleEndian, &h); err != nil {
		return h, nil, err
	}
	if got := string(h.Signature[:]); got != signature {
		return h, nil, fmt.Errorf("%w: got %q, want %q", ErrSignature, got, signature)
	}
	if int(h.Length) < hs || int(h.Length) > len(b) {
		return h, nil, fmt.Errorf("%w: header length %d, have %d bytes", ErrTruncated, h.Length, len(b))
	}
	b = b[:h.Length]
	if sum := Sum(b); sum != 0 {
		return h, nil, fmt.Errorf("%w: byte sum is %#02x", ErrChecksum, sum)
	}
	return h, b, nil
}

// Parse verifies the table in b (see Verify) and decodes all structures the
// control structure references. Bytes after the header's length are ignored.
func Parse(b []byte) (*Table, error) {
	h, b, err := verify(b)
	if err != nil {
		return nil, err
	}
	t := &Table{
		Header: h,
		raw:    b,
	}
	// The control structure directly follows the table header.
	if err := t.read(uint16(binary.Size(h)), IDControl, &t.Control); err != nil {
		return nil, err
	}
	c := t.Control
	if c.InitiatorOffset != 0 {
		t.Initiator = new(Initiator)
		if err := t.read(c.InitiatorOffset, IDInitiator, t.Initiator); err != nil {
			return nil, err
		}
	}
	if c.NIC0Offset != 0 {
		t.NIC0 = new(NIC)
		if err := t.read(c.NIC0Offset, IDNIC, t.NIC0); err != nil {
			return nil, err
		}
	}
	if c.Target0Offset != 0 {
		t.Target0 = new(Target)
		if err := t.read(c.Target0Offset, IDTarget, t.Target0); err != nil {
			return nil, err
		}
	}
	if c.NIC1Offset != 0 {
		t.NIC1 = new(NIC)
		if err := t.read(c.NIC1Offset, IDNIC, t.NIC1); err != nil {
			return nil, err
		}
	}
	if c.Target1Offset != 0 {
		t.Target1 = new(Target)
		if err := t.read(c.Target1Offset, IDTarget, t.Target1); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) read(off uint16, id uint8, v any) error {
	end := int(off) + binary.Size(v)
	if end > len(t.raw) {
		return fmt.Errorf("%w: structure %d at offset %d ends beyond %d bytes", ErrTruncated, id, off, len(t.raw))
	}
	if got := t.raw[off]; got != id {
		return fmt.Errorf("%w: offset %d: got id %d, want %d", ErrStructure, off, got, id)
	}
	return binary.Read(bytes.NewReader(t.raw[off:end]), binary.LittleEndian, v)
}

// Text returns the string referenced by a length/offset pair. A zero offset
// denotes an unset string.
func (t *Table) Text(length, offset uint16) (string, error) {
	if offset == 0 {
		return "", nil
	}
	end := int(offset) + int(length)
	if end > len(t.raw) {
		return "", fmt.Errorf("%w: string at offset %d ends beyond %d bytes", ErrTruncated, offset, len(t.raw))
	}
	return string(t.raw[offset:end]), nil
}

package ibft

import "encoding/binary"

// ParseIP parses an IPv4 address in dotted decimal notation (stored as an
// IPv4-mapped IPv6 address) or a full IPv6 address of eight hexadecimal
// groups. Compressed IPv6 notation (::) is not understood. Like scanf, it
// skips blanks in front of each group, truncates oversized groups to the field
// width and ignores text following the last group.
//
// If s is neither, ParseIP returns the zero address and false.
func ParseIP(s string) (ip [16]byte, ok bool) {
	if groups, ok := scanGroups(s, 4, '.', 10); ok {
		ip[10], ip[11] = 0xff, 0xff
		for i, g := range groups {
			ip[12+i] = uint8(g)
		}
		return ip, true
	}
	if groups, ok := scanGroups(s, 8, ':', 16); ok {
		for i, g := range groups {
			binary.BigEndian.PutUint16(ip[2*i:], uint16(g))
		}
		return ip, true
	}
	return [16]byte{}, false
}

// ParseMAC parses a MAC address of six colon-separated hexadecimal groups,
// e.g. 00:1b:21:3c:9d:f8. Partial addresses are rejected as a whole.
func ParseMAC(s string) (mac [6]byte, ok bool) {
	groups, ok := scanGroups(s, 6, ':', 16)
	if !ok {
		return [6]byte{}, false
	}
	for i, g := range groups {
		mac[i] = uint8(g)
	}
	return mac, true
}

// parseUint returns a parser for unsigned decimal numbers which keeps the low
// bits of the result.
func parseUint(bits uint) func(string) (uint64, bool) {
	return func(s string) (uint64, bool) {
		sc := scanner{s: s}
		v, ok := sc.number(10)
		if !ok {
			return 0, false
		}
		if bits < 64 {
			v &= 1<<bits - 1
		}
		return v, true
	}
}

func parseString(s string) (string, bool) { return s, true }

// scanGroups reads n numbers in the given base separated by sep.
func scanGroups(s string, n int, sep byte, base uint64) ([]uint64, bool) {
	sc := scanner{s: s}
	groups := make([]uint64, n)
	for i := range groups {
		if i > 0 && !sc.literal(sep) {
			return nil, false
		}
		v, ok := sc.number(base)
		if !ok {
			return nil, false
		}
		groups[i] = v
	}
	return groups, true
}

// scanner implements the subset of scanf conversions (%u, %x and literal
// characters) needed for kenv values.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) literal(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) skipBlanks() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			sc.pos++
		default:
			return
		}
	}
}

// number reads an unsigned number in base 10 or 16, optionally preceded by a
// plus sign. Hexadecimal numbers may carry a 0x prefix. Negative numbers and
// numbers which do not fit 64 bits are rejected.
func (sc *scanner) number(base uint64) (uint64, bool) {
	sc.skipBlanks()
	sc.literal('+')
	if base == 16 && sc.pos+2 < len(sc.s) &&
		sc.s[sc.pos] == '0' && (sc.s[sc.pos+1] == 'x' || sc.s[sc.pos+1] == 'X') &&
		digitValue(sc.s[sc.pos+2]) < base {
		sc.pos += 2
	}
	var (
		v      uint64
		digits int
	)
	for ; sc.pos < len(sc.s); sc.pos++ {
		d := digitValue(sc.s[sc.pos])
		if d >= base {
			break
		}
		if v > (^uint64(0)-d)/base {
			return 0, false
		}
		v = v*base + d
		digits++
	}
	return v, digits > 0
}

func digitValue(c byte) uint64 {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0')
	case 'a' <= c && c <= 'f':
		return uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 255
}

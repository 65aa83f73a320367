package ibft

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// putFixed copies s into the fixed-width field dst and returns the number of
// bytes copied. A shorter s is padded with zero bytes. An s of len(dst) bytes
// or more fills dst completely, without a terminating NUL.
func putFixed(dst []byte, s string) int {
	n := copy(dst, s)
	clear(dst[n:])
	return n
}

// embedString copies at most len(dst)-1 bytes of s into dst, stopping at an
// embedded NUL, and terminates the copy with NUL. The rest of dst is zeroed.
// It returns the number of bytes copied, not counting the terminator.
func embedString(dst []byte, s string) int {
	if len(dst) == 0 {
		return 0
	}
	if idx := strings.IndexByte(s, 0); idx > -1 {
		s = s[:idx]
	}
	n := copy(dst[:len(dst)-1], s)
	clear(dst[n:])
	return n
}

// put encodes the fixed-size structure v into dst. It panics if v is not
// fixed-size or does not fit dst.
func put(dst []byte, v any) {
	buf := bytes.NewBuffer(make([]byte, 0, len(dst)))
	// buf.Write never fails, so an error means v is not fixed-size
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		panic(fmt.Sprintf("ibft: encoding %T: %v", v, err))
	}
	if buf.Len() > len(dst) {
		panic(fmt.Sprintf("ibft: %T needs %d bytes, region has %d", v, buf.Len(), len(dst)))
	}
	copy(dst, buf.Bytes())
}

package ibft

// Sum returns the sum of all bytes of b modulo 256. It is zero for a
// complete table.
func Sum(b []byte) uint8 {
	var sum uint8
	for _, c := range b {
		sum += c
	}
	return sum
}

// Checksum returns the byte which, added to the bytes of b, brings their sum
// to zero modulo 256. b must contain the checksum field set to zero.
func Checksum(b []byte) uint8 {
	return -Sum(b)
}

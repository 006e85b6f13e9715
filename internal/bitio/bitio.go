// Package bitio expands bytes into bit sequences and back, in the
// LSB-first order shared by both steganographic codecs.
package bitio

// Unpack expands data into one bool per bit, least significant bit of
// each byte first, bytes in original order.
func Unpack(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, b>>i&1 == 1)
		}
	}
	return bits
}

// Pack groups bits back into bytes, LSB-first. A trailing group of
// fewer than 8 bits is truncated rather than zero-padded: a partial
// byte can only come from corrupted or foreign carrier text, and a
// fabricated final byte is worse than a missing one.
func Pack(bits []bool) []byte {
	data := make([]byte, 0, len(bits)/8)
	for len(bits) >= 8 {
		var b byte
		for i := 0; i < 8; i++ {
			if bits[i] {
				b |= 1 << i
			}
		}
		data = append(data, b)
		bits = bits[8:]
	}
	return data
}

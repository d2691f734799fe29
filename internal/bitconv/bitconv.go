package bitconv

// Sentinel is the end-of-text character (ETX) appended to every payload.
const Sentinel byte = 0b00000011

// BytesToBits expands each byte into 8 bits, most significant first.
// Every element of the result is 0 or 1.
func BytesToBits(b []byte) []byte {
	bits := make([]byte, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (bb>>uint(i))&1)
		}
	}
	return bits
}

// BitsToBytes packs bits back into bytes. A trailing partial byte is dropped.
func BitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if bits[i*8+j] != 0 {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}

// Encode converts text to its bit sequence followed by the sentinel.
// Each rune is truncated to its low 8 bits, so only code points up to 255
// survive a round trip.
func Encode(text string) []byte {
	runes := []rune(text)
	b := make([]byte, 0, len(runes)+1)
	for _, r := range runes {
		b = append(b, byte(r))
	}
	b = append(b, Sentinel)
	return BytesToBits(b)
}

// Decode maps every complete 8-bit group to the rune of the same value.
func Decode(bits []byte) string {
	b := BitsToBytes(bits)
	runes := make([]rune, len(b))
	for i, bb := range b {
		runes[i] = rune(bb)
	}
	return string(runes)
}

// IsSentinel reports whether bits ends on a byte boundary with the sentinel.
func IsSentinel(bits []byte) bool {
	n := len(bits)
	if n == 0 || n%8 != 0 {
		return false
	}
	return BitsToBytes(bits[n-8:])[0] == Sentinel
}

// Terminated scans bits in 8-bit groups and returns the bits preceding the
// first sentinel. ok is false when no sentinel is present.
func Terminated(bits []byte) (payload []byte, ok bool) {
	for end := 8; end <= len(bits); end += 8 {
		if IsSentinel(bits[:end]) {
			return bits[: end-8 : end-8], true
		}
	}
	return nil, false
}

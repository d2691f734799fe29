package stegano

// TextCipher transforms the plaintext before it is embedded and restores it
// after extraction. Decode must invert Encode.
type TextCipher interface {
	Encode(src string) (string, error)
	Decode(mark string) (string, error)
}

// Key is the pair needed to locate an embedded payload. It is returned by
// Encode and must be kept to Decode; without it the payload cannot be found.
type Key struct {
	Interval int
	Offset   int
}

// Encoded is the result of embedding text into a channel buffer.
type Encoded struct {
	Buffer []uint8
	Key    Key
}

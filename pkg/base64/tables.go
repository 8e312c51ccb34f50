package base64

// Alphabet is the RFC 4648 standard Base64 alphabet. The position of each
// symbol is the 6-bit value it represents.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding fills the final quadruple when the input length is not a
// multiple of three.
const Padding byte = '='

// Sentinel values stored in the decoding table for bytes that are not
// alphabet symbols.
const (
	PaddingValue byte = 64
	InvalidValue byte = 80
)

// decodeTable maps every input byte to its 6-bit value, PaddingValue for
// '=' or InvalidValue for anything else.
var decodeTable = func() [256]byte {
	var dec [256]byte

	for i := range dec {
		dec[i] = InvalidValue
	}

	for i := 0; i < len(Alphabet); i++ {
		dec[Alphabet[i]] = byte(i)
	}

	dec[Padding] = PaddingValue

	return dec
}()

// Value returns the decoding table entry for c.
func Value(c byte) byte {
	return decodeTable[c]
}

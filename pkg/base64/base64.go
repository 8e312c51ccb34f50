package base64

// EncodedLen returns the length of the Base64 text for n input bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes DecodeBytes produces for the
// given input.
func DecodedLen(encoded string) int {
	n := len(encoded)
	if n == 0 {
		return 0
	}

	if encoded[n-1] != Padding {
		return (n + 3) / 4 * 3
	}

	quads := 0
	if end := n - 4; end > 0 {
		quads = (end + 3) / 4
	}

	if i := quads*4 + 2; i < n && encoded[i] == Padding {
		return quads*3 + 1
	}
	return quads*3 + 2
}

// Encode returns the padded Base64 form of the UTF-8 bytes of text.
func Encode(text string) string {
	return EncodeBytes([]byte(text))
}

// EncodeBytes returns the padded Base64 form of src.
func EncodeBytes(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	dst := make([]byte, EncodedLen(len(src)))

	whole := len(src) / 3 * 3
	di := 0
	for si := 0; si < whole; si += 3 {
		b0, b1, b2 := src[si], src[si+1], src[si+2]

		dst[di+0] = Alphabet[b0>>2]
		dst[di+1] = Alphabet[(b0&0x03)<<4|b1>>4]
		dst[di+2] = Alphabet[(b1&0x0f)<<2|b2>>6]
		dst[di+3] = Alphabet[b2&0x3f]

		di += 4
	}

	switch len(src) - whole {
	case 1:
		b0 := src[whole]
		dst[di+0] = Alphabet[b0>>2]
		dst[di+1] = Alphabet[(b0&0x03)<<4]
		dst[di+2] = Padding
		dst[di+3] = Padding
	case 2:
		b0, b1 := src[whole], src[whole+1]
		dst[di+0] = Alphabet[b0>>2]
		dst[di+1] = Alphabet[(b0&0x03)<<4|b1>>4]
		dst[di+2] = Alphabet[(b1&0x0f)<<2]
		dst[di+3] = Padding
	}

	return string(dst)
}

// Decode returns the text encoded by the Base64 string encoded.
//
// The input is trusted: nothing is validated, and malformed input yields
// unspecified output rather than an error. Use DecodeStrict for untrusted
// input.
func Decode(encoded string) string {
	return string(DecodeBytes(encoded))
}

// DecodeBytes is like Decode but returns the raw decoded bytes.
func DecodeBytes(encoded string) []byte {
	n := len(encoded)

	// A trailing '=' means the last quadruple carries fewer than three
	// bytes and is decoded after the main loop.
	padded := n > 0 && encoded[n-1] == Padding
	end := n
	if padded {
		end = n - 4
	}

	dst := make([]byte, 0, DecodedLen(encoded))

	i := 0
	for ; i < end; i += 4 {
		v1 := valueAt(encoded, i)
		v2 := valueAt(encoded, i+1)
		v3 := valueAt(encoded, i+2)
		v4 := valueAt(encoded, i+3)

		dst = append(dst,
			v1<<2|(v2&0x30)>>4,
			(v2&0x0f)<<4|(v3&0x3c)>>2,
			(v3&0x03)<<6|v4&0x3f,
		)
	}

	if padded {
		v1 := valueAt(encoded, i)
		v2 := valueAt(encoded, i+1)

		dst = append(dst, v1<<2|(v2&0x30)>>4)

		if i+2 >= n || encoded[i+2] != Padding {
			v3 := valueAt(encoded, i+2)
			dst = append(dst, (v2&0x0f)<<4|(v3&0x3c)>>2)
		}
	}

	return dst
}

// valueAt looks up the symbol at position i, reading past the end of the
// input as zero.
func valueAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return decodeTable[s[i]]
}

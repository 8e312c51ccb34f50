package base64

// Validate reports whether encoded is well-formed padded Base64: its length
// is a multiple of 4, padding only appears in the last one or two positions,
// and every other byte is an alphabet symbol.
//
// The returned error is an *ErrCorruptInput and matches ErrInvalidEncoding.
func Validate(encoded string) error {
	n := len(encoded)
	if n%4 != 0 {
		return NewCorruptInputError(n-n%4, ErrInvalidLength)
	}

	for i := 0; i < n; i++ {
		switch decodeTable[encoded[i]] {
		case InvalidValue:
			return NewCorruptInputError(i, ErrInvalidCharacter)
		case PaddingValue:
			if i == n-1 || (i == n-2 && encoded[n-1] == Padding) {
				continue
			}
			return NewCorruptInputError(i, ErrMisplacedPadding)
		}
	}

	return nil
}

// DecodeStrict validates encoded before decoding it.
func DecodeStrict(encoded string) (string, error) {
	b, err := DecodeBytesStrict(encoded)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBytesStrict is like DecodeStrict but returns the raw decoded bytes.
func DecodeBytesStrict(encoded string) ([]byte, error) {
	if err := Validate(encoded); err != nil {
		return nil, err
	}
	return DecodeBytes(encoded), nil
}

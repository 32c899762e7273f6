package hexcodec

// Bytes is a slice of bytes that marshals/unmarshals as a 0x-prefixed hex string.
type Bytes []byte

// MarshalText implements the encoding.TextMarshaler interface.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(encodeHex(b)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The prefix is optional and odd digit counts are left-padded with a zero.
func (b *Bytes) UnmarshalText(text []byte) error {
	dec, err := decodeHex(string(text))
	if err != nil {
		return err
	}
	*b = dec
	return nil
}

// String returns the 0x-prefixed hex encoding of b.
func (b Bytes) String() string {
	return encodeHex(b)
}

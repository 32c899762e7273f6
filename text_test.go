package hexcodec

import (
	"bytes"
	"encoding/hex"
	"testing"
	"testing/quick"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestToUtf8(t *testing.T) {
	s, err := ToUtf8("0x68656c6c6f")
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	// Everything after the first zero byte is dropped, leading zeros included.
	s, err = ToUtf8("0x00610062")
	require.NoError(t, err)
	require.Equal(t, "", s)

	_, err = ToUtf8("0xc3")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ToUtf8("0xfffe")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ToUtf8("0xqq")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromUtf8(t *testing.T) {
	h, err := FromUtf8("é")
	require.NoError(t, err)
	require.Equal(t, "0xc3a9", h)

	h, err = FromUtf8("\x00abc")
	require.NoError(t, err)
	require.Equal(t, "0x", h)

	_, err = FromUtf8("bad\xff")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestToAscii(t *testing.T) {
	s, err := ToAscii("0x00ff")
	require.NoError(t, err)
	require.Equal(t, "\x00ÿ", s)

	_, err = ToAscii("0xg0")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestToAsciiOddLength(t *testing.T) {
	s, err := ToAscii("0x616")
	require.NoError(t, err)
	require.Equal(t, "a\x06", s)

	s, err = ToAscii("41424")
	require.NoError(t, err)
	require.Equal(t, "AB\x04", s)

	_, err = ToAscii("0x61g")
	require.ErrorIs(t, err, ErrInvalidFormat)
	_, err = ToAscii("0xg61")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromAscii(t *testing.T) {
	h, err := FromAscii("ÿ\x7f")
	require.NoError(t, err)
	require.Equal(t, "0xff7f", h)

	_, err = FromAscii("€")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromAscii("\xff")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAsciiRoundTrip(t *testing.T) {
	condition := func(b []byte) bool {
		text, err := ToAscii(hex.EncodeToString(b))
		require.NoError(t, err)
		h, err := FromAscii(text)
		require.NoError(t, err)
		back, err := ToBuffer(TextValue(h))
		require.NoError(t, err)
		return bytes.Equal(b, back)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestUtf8RoundTrip(t *testing.T) {
	condition := func(s string) bool {
		if i := bytes.IndexByte([]byte(s), 0); i >= 0 {
			s = s[:i]
		}
		h, err := FromUtf8(s)
		require.NoError(t, err)
		back, err := ToUtf8(h)
		require.NoError(t, err)
		return back == s
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func FuzzToUtf8(f *testing.F) {
	f.Add("0x68656c6c6f")
	f.Add("0x00610062")
	f.Add("0xc3")
	f.Fuzz(func(t *testing.T, h string) {
		s, err := ToUtf8(h)
		if err != nil {
			require.Empty(t, s)
			return
		}
		require.True(t, utf8.ValidString(s))
		require.NotContains(t, s, "\x00")
	})
}

func FuzzAsciiRoundTrip(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{0x00, 0xff})
	f.Fuzz(func(t *testing.T, b []byte) {
		text, err := ToAscii(hex.EncodeToString(b))
		require.NoError(t, err)
		require.Equal(t, len(b), utf8.RuneCountInString(text))
		h, err := FromAscii(text)
		require.NoError(t, err)
		require.Equal(t, encodeHex(b), h)
	})
}

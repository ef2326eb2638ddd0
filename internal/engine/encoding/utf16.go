package encoding

import (
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

type byteOrder int

const (
	littleEndian byteOrder = iota
	bigEndian
)

// utf16Codec decodes/encodes one codepoint at a time by driving
// golang.org/x/text/encoding/unicode's transform.Transformer over a
// 2- or 4-byte window, rather than hand-rolling UTF-16 surrogate-pair
// arithmetic — x/text is the pack's answer for an encoding stdlib has
// no decoder for at all.
type utf16Codec struct {
	name string
	enc  *xunicode.Encoding
}

func newUTF16(order byteOrder) Codec {
	if order == littleEndian {
		return utf16Codec{name: "UTF-16LE", enc: xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)}
	}
	return utf16Codec{name: "UTF-16BE", enc: xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)}
}

func (c utf16Codec) Name() string { return c.name }

func (c utf16Codec) MaxCodepointLen() int { return 4 }

func (c utf16Codec) NextCodepoint(b []byte) (rune, int) {
	if len(b) < 2 {
		return ReplacementChar, maxInt(1, len(b))
	}
	if r, ok := c.tryDecode(b[:2]); ok {
		return r, 2
	}
	if len(b) >= 4 {
		if r, ok := c.tryDecode(b[:4]); ok {
			return r, 4
		}
	}
	return ReplacementChar, 2
}

func (c utf16Codec) tryDecode(window []byte) (rune, bool) {
	dst := make([]byte, utf8.UTFMax)
	dec := c.enc.NewDecoder()
	nDst, nSrc, err := dec.Transform(dst, window, true)
	if err != nil || nSrc != len(window) || nDst == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(dst[:nDst])
	if r == utf8.RuneError {
		return 0, false
	}
	return r, size == nDst
}

func (c utf16Codec) Encode(r rune) []byte {
	src := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(src, r)
	dst := make([]byte, 4)
	enc := c.enc.NewEncoder()
	nDst, _, err := enc.Transform(dst, src[:n], true)
	if err != nil {
		return nil
	}
	return append([]byte(nil), dst[:nDst]...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

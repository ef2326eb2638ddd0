package encoding

import "unicode/utf8"

// UTF8 is the UTF-8 codec. Its zero value is ready to use.
type UTF8 struct{}

// Name implements Codec.
func (UTF8) Name() string { return "UTF-8" }

// MaxCodepointLen implements Codec.
func (UTF8) MaxCodepointLen() int { return utf8.UTFMax }

// NextCodepoint implements Codec. utf8.DecodeRune already reports
// utf8.RuneError with size 1 on invalid input, which is exactly
// spec.md's required decode-anomaly behavior.
func (UTF8) NextCodepoint(b []byte) (rune, int) {
	if len(b) == 0 {
		return ReplacementChar, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return ReplacementChar, 1
	}
	return r, size
}

// Encode implements Codec.
func (UTF8) Encode(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}

package encoding

// ReplacementChar is the sentinel codepoint decoded from invalid
// input (spec.md 6: "A replacement codepoint constant for invalid
// input (U+FFFD)").
const ReplacementChar = rune(0xFFFD)

// Codec is spec.md's encoding enumeration: get_name,
// get_maximum_codepoint_length, next_codepoint, encode_codepoint.
type Codec interface {
	// Name returns the encoding's canonical name, used by docreg to
	// key interpretations of the same buffer.
	Name() string

	// MaxCodepointLen returns the greatest number of bytes Encode can
	// produce for any codepoint.
	MaxCodepointLen() int

	// NextCodepoint decodes the codepoint starting at b[0]. It always
	// consumes at least one byte (size >= 1), even on invalid input,
	// in which case it returns ReplacementChar.
	NextCodepoint(b []byte) (r rune, size int)

	// Encode returns the byte encoding of r.
	Encode(r rune) []byte
}

// ByName resolves one of the three codecs spec.md names as "at
// minimum" supported: UTF-8, UTF-16LE, UTF-16BE. It returns nil for
// any other name — this core's encoding set is closed, constructed by
// the host, never looked up against an open-ended registry.
func ByName(name string) Codec {
	switch name {
	case "UTF-8":
		return UTF8{}
	case "UTF-16LE":
		return newUTF16(littleEndian)
	case "UTF-16BE":
		return newUTF16(bigEndian)
	default:
		return nil
	}
}

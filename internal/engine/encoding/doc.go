// Package encoding implements spec.md's encoding abstraction (spec.md
// 3.1, 6): a closed set of codecs — UTF-8, UTF-16LE, UTF-16BE — each
// able to decode one codepoint from a byte slice (reporting the
// Unicode replacement codepoint on invalid input while always
// advancing by at least one byte, to guarantee interp's fixup loop
// terminates) and encode a codepoint back to bytes.
//
// UTF-8 is handled directly with unicode/utf8, since its contract is
// already exactly spec.md's decode-one-codepoint contract. UTF-16 is
// backed by golang.org/x/text/encoding/unicode, the pack's answer for
// an encoding stdlib cannot decode at all.
package encoding

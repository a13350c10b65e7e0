// Package bom detects, strips, and emits Unicode byte order marks on
// byte streams, and builds text readers and writers that decode or
// encode accordingly. Detection is a byte-exact prefix match against a
// fixed table of signatures; there is no content sniffing.
package bom

const Version = "0.0.1"

// Charset names an encoding whose BOM this package recognizes.
type Charset string

const (
	None    Charset = ""
	UTF8    Charset = "UTF-8"
	UTF16LE Charset = "UTF-16LE"
	UTF16BE Charset = "UTF-16BE"
	UTF32LE Charset = "UTF-32LE"
	UTF32BE Charset = "UTF-32BE"
)

// Signature pairs a charset with the exact byte sequence that marks it.
type Signature struct {
	Charset Charset
	Pattern []byte
}

// BOM patterns
var (
	patUTF8    = []byte{0xEF, 0xBB, 0xBF}
	patUTF16LE = []byte{0xFF, 0xFE}
	patUTF16BE = []byte{0xFE, 0xFF}
	patUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	patUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// signatures is ordered by detection precedence: UTF-8 first (no other
// pattern is a prefix of it), then the 4 byte UTF-32 patterns, then the
// 2 byte UTF-16 patterns. UTF-16LE's pattern is a prefix of UTF-32LE's,
// so the longer class must be ruled out before the shorter one is tried.
var signatures = []Signature{
	{UTF8, patUTF8},
	{UTF32LE, patUTF32LE},
	{UTF32BE, patUTF32BE},
	{UTF16LE, patUTF16LE},
	{UTF16BE, patUTF16BE},
}

// maxPatternLen bounds how far Detect looks ahead. Derived from the
// table so that a longer signature added later widens the peek with it.
var maxPatternLen = func() int {
	var max int
	for _, sig := range signatures {
		if l := len(sig.Pattern); l > max {
			max = l
		}
	}
	return max
}()

// Lookup returns the BOM byte sequence for the given charset.
func Lookup(charset Charset) ([]byte, bool) {
	for _, sig := range signatures {
		if sig.Charset == charset {
			return sig.Pattern, true
		}
	}
	return nil, false
}

// Signatures returns the registered signatures in detection precedence
// order.
func Signatures() []Signature {
	ret := make([]Signature, len(signatures))
	copy(ret, signatures)
	return ret
}

// Charsets returns the names of the charsets this package knows the
// BOM for.
func Charsets() []Charset {
	ret := make([]Charset, 0, len(signatures))
	for _, sig := range signatures {
		ret = append(ret, sig.Charset)
	}
	return ret
}

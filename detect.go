package bom

import (
	"bytes"
	"io"

	"github.com/lestrrat-go/pdebug"
)

// PeekReader is the byte source Detect requires: a reader that can
// report its next bytes without consuming them. *bufio.Reader
// satisfies it. A source without native lookahead must be wrapped by
// the caller before detection.
type PeekReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// Detect reports which registered BOM, if any, src starts with. It
// inspects at most as many bytes as the longest registered signature
// and never advances the read position, so a
// subsequent consumer sees the stream from its very first byte. A
// source too short to hold any signature yields None; that is not an
// error.
func Detect(src PeekReader) (charset Charset, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("bom.Detect").BindError(&err)
		defer g.End()
	}

	buf, err := src.Peek(maxPatternLen)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return None, err
	}
	return DetectBytes(buf), nil
}

// DetectBytes is Detect over an in-memory buffer. Bytes beyond the end
// of b never match; they are not treated as wildcards.
func DetectBytes(b []byte) Charset {
	for _, sig := range signatures {
		if bytes.HasPrefix(b, sig.Pattern) {
			return sig.Charset
		}
	}
	return None
}

// Strip returns b with its leading BOM removed, along with the charset
// the BOM named. Without a BOM it returns b unchanged and None.
func Strip(b []byte) ([]byte, Charset) {
	charset := DetectBytes(b)
	if charset == None {
		return b, None
	}
	pat, _ := Lookup(charset)
	return b[len(pat):], charset
}

// Has reports whether src begins with the BOM for the named charset.
// It reads exactly as many bytes as the signature is long, consuming
// them from src; callers that need the stream positioned at its start
// afterwards must hand in a copy or a resettable wrapper. A source
// shorter than the signature simply does not contain it, so a short
// read reports false rather than an error.
func Has(charset Charset, src io.Reader) (bool, error) {
	pat, ok := Lookup(charset)
	if !ok {
		return false, UnsupportedCharsetError{Charset: charset}
	}

	buf := make([]byte, len(pat))
	if _, err := io.ReadFull(src, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(buf, pat), nil
}

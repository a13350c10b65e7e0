package bom

import (
	"bufio"
	"io"

	"github.com/lestrrat-go/bom/encoding"
	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Reader decodes a byte stream whose encoding was selected by BOM
// detection. It implements io.ReadCloser.
type Reader struct {
	r       *bufio.Reader // decoded text
	src     io.Reader     // original source, released by Close
	charset Charset
	closed  bool
}

// NewReader wraps src in a text-decoding reader. The encoding is
// selected by running Detect against the start of src; without a BOM
// the fallback encoding applies (UTF-8 unless WithFallback says
// otherwise). Unless WithSkipBOM(false) is given, the BOM character
// does not appear in the decoded text.
//
// The returned Reader owns src: closing the Reader closes src, and
// the caller must not touch src directly afterwards.
func NewReader(src io.Reader, options ...ReadOption) (rd *Reader, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("bom.NewReader").BindError(&err)
		defer g.End()
	}

	skip := true
	var fallback enc.Encoding = unicode.UTF8
	for _, o := range options {
		switch o.Ident().(type) {
		case identSkipBOM:
			skip = o.Value().(bool)
		case identFallback:
			fallback = o.Value().(enc.Encoding)
		}
	}

	pr, ok := src.(PeekReader)
	if !ok {
		pr = bufio.NewReader(src)
	}

	charset, err := Detect(pr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect BOM")
	}

	e := fallback
	if charset != None {
		e = encoding.Load(string(charset))
	}

	r := &Reader{
		r:       bufio.NewReader(e.NewDecoder().Reader(pr)),
		src:     src,
		charset: charset,
	}

	if charset != None && skip {
		if err := r.skipBOMRune(); err != nil {
			return nil, errors.Wrap(err, "failed to skip BOM character")
		}
	}
	return r, nil
}

// skipBOMRune consumes the BOM character from the decoded stream. The
// skip is one decoded character, not a byte count: the encodings
// differ in how many bytes that character occupies.
func (r *Reader) skipBOMRune() error {
	c, _, err := r.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	if c != '\uFEFF' {
		return r.r.UnreadRune()
	}
	return nil
}

func (r *Reader) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// Charset returns the charset selected by detection, or None when the
// source had no BOM and the fallback encoding applied.
func (r *Reader) Charset() Charset {
	return r.charset
}

// Close releases the wrapped source, if it is closeable. Only the
// first call has any effect.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

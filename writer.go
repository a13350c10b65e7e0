package bom

import (
	"io"

	"github.com/lestrrat-go/bom/encoding"
	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
	"golang.org/x/text/transform"
)

// Writer encodes UTF-8 text into a byte sink that already carries the
// BOM for its charset. It implements io.WriteCloser.
type Writer struct {
	w      *transform.Writer
	dst    io.Writer
	closed bool
}

// NewWriter writes the BOM for the given charset to dst and returns a
// writer that encodes everything subsequently written to it with that
// charset. An unregistered charset is rejected before any byte
// reaches dst.
//
// The returned Writer owns dst: Close flushes the encoder and then
// closes dst.
func NewWriter(charset Charset, dst io.Writer) (w *Writer, err error) {
	if pdebug.Enabled {
		g := pdebug.Marker("bom.NewWriter(%s)", charset).BindError(&err)
		defer g.End()
	}

	pat, ok := Lookup(charset)
	if !ok {
		return nil, UnsupportedCharsetError{Charset: charset}
	}

	if _, err := dst.Write(pat); err != nil {
		return nil, errors.Wrap(err, "failed to write BOM")
	}

	e := encoding.Load(string(charset))
	return &Writer{
		w:   transform.NewWriter(dst, e.NewEncoder()),
		dst: dst,
	}, nil
}

// Write encodes p, which must be UTF-8 text, into the sink.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Close flushes any pending encoder state, then closes the sink if it
// is closeable. Only the first call has any effect.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.w.Close()
	if c, ok := w.dst.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

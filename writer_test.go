package bom_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/lestrrat-go/bom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterBOMFirst(t *testing.T) {
	for _, charset := range bom.Charsets() {
		t.Logf("checking %s", charset)

		var buf bytes.Buffer
		_, err := bom.NewWriter(charset, &buf)
		require.NoError(t, err, "NewWriter should succeed")

		pat, ok := bom.Lookup(charset)
		require.True(t, ok, "Lookup should succeed")
		require.Equal(t, pat, buf.Bytes(), "the signature is written before any text")
	}
}

func TestWriterEncodes(t *testing.T) {
	var buf bytes.Buffer
	w, err := bom.NewWriter(bom.UTF16LE, &buf)
	require.NoError(t, err, "NewWriter should succeed")

	_, err = io.WriteString(w, "hi")
	require.NoError(t, err, "writing should succeed")
	require.NoError(t, w.Close(), "closing should succeed")

	expected := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	require.Equal(t, expected, buf.Bytes(), "text is encoded after the signature")
}

func TestWriterUnsupportedCharset(t *testing.T) {
	var buf bytes.Buffer
	_, err := bom.NewWriter("bogus-charset", &buf)
	require.Error(t, err, "NewWriter should fail for an unknown charset")

	require.IsType(t, bom.UnsupportedCharsetError{}, err, "error type matches")
	require.Contains(t, err.Error(), "bogus-charset", "error names the rejected charset")
	require.Contains(t, err.Error(), "UTF-8", "error enumerates the accepted charsets")
	require.Zero(t, buf.Len(), "nothing reaches the sink")
}

type countingWriteCloser struct {
	io.Writer
	closed   int
	closeErr error
}

func (c *countingWriteCloser) Close() error {
	c.closed++
	return c.closeErr
}

func TestWriterClosesSinkOnce(t *testing.T) {
	var buf bytes.Buffer
	dst := &countingWriteCloser{Writer: &buf}

	w, err := bom.NewWriter(bom.UTF8, dst)
	require.NoError(t, err, "NewWriter should succeed")

	_, err = io.WriteString(w, "hi")
	require.NoError(t, err, "writing should succeed")

	assert.NoError(t, w.Close(), "first Close succeeds")
	assert.NoError(t, w.Close(), "second Close is a no-op")
	assert.Equal(t, 1, dst.closed, "the sink is closed exactly once")
}

func TestWriterCloseReportsSinkFailure(t *testing.T) {
	var buf bytes.Buffer
	dst := &countingWriteCloser{Writer: &buf, closeErr: errors.New("sink failed")}

	w, err := bom.NewWriter(bom.UTF16LE, dst)
	require.NoError(t, err, "NewWriter should succeed")

	_, err = io.WriteString(w, "hi")
	require.NoError(t, err, "writing should succeed")

	err = w.Close()
	require.Error(t, err, "Close must surface the sink's failure")
	require.Contains(t, err.Error(), "sink failed", "the sink's error is the one reported")
}

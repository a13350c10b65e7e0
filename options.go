package bom

import (
	"github.com/lestrrat-go/option"
	enc "golang.org/x/text/encoding"
)

type Option = option.Interface

type identFallback struct{}
type identSkipBOM struct{}

// ReadOption is an option accepted by NewReader.
type ReadOption interface {
	Option
	readOption()
}

type readOption struct{ Option }

func (*readOption) readOption() {}

// WithSkipBOM specifies whether the reader elides the BOM character
// from the decoded text. The default is true.
func WithSkipBOM(v bool) ReadOption {
	return &readOption{option.New(identSkipBOM{}, v)}
}

// WithFallback specifies the encoding used to decode a source that
// carries no BOM. The default is UTF-8.
func WithFallback(v enc.Encoding) ReadOption {
	return &readOption{option.New(identFallback{}, v)}
}

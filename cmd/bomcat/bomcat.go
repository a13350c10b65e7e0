package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/bom"
)

type cmdopts struct {
	Encoding string `long:"encoding"`
	KeepBOM  bool   `long:"keep-bom"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("bomcat: using bom version %s\n", bom.Version)
}

func showUsage() {
	fmt.Printf(`Usage : bomcat [options] files ...
	Decode the files (or stdin) according to their BOM and write the
	text to stdout
	--encoding=name : re-encode the output with the named charset's BOM
	--keep-bom : keep the BOM character in the decoded text
	--version : display the version of the bom library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var out io.Writer = os.Stdout
	var enc *bom.Writer
	if opts.Encoding != "" {
		w, err := bom.NewWriter(bom.Charset(opts.Encoding), os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		enc = w
		out = w
	}

	if len(args) == 0 {
		if err := pipe(out, os.Stdin, opts.KeepBOM); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return finish(enc)
	}

	for _, f := range args {
		fh, err := os.Open(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if err := pipe(out, fh, opts.KeepBOM); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return finish(enc)
}

// finish flushes the re-encoding writer, if any. The encoder may be
// holding buffered output, so a Close failure means truncated output
// and must not look like success.
func finish(enc *bom.Writer) int {
	if enc == nil {
		return 0
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func pipe(dst io.Writer, src io.Reader, keepBOM bool) error {
	var options []bom.ReadOption
	if keepBOM {
		options = append(options, bom.WithSkipBOM(false))
	}

	r, err := bom.NewReader(src, options...)
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = io.Copy(dst, r)
	return err
}

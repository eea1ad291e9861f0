package xlogfs

import (
	"bytes"

	"github.com/xlogdecode/xlog-decode/errors"
	"github.com/xlogdecode/xlog-decode/xlog"
)

// DecodeResult reports the outcome of decoding a single input file,
// the way the original command-line tool's per-file timing and size
// lines do.
type DecodeResult struct {
	InputPath  string
	OutputPath string
	InputSize  int
	OutputSize int
	// HadErrors is true if the decoded output contains at least one
	// "[F]xlog_decode" inline error marker: the file decoded, but
	// imperfectly.
	HadErrors bool
}

// DecodeFile reads path, decodes it, writes the result to
// OutputName(path), and reports what happened. skipErrors controls
// whether the decoder recovers past a malformed frame (true, the
// default) or stops at the first one (false, --keep-errors).
//
// Classification runs before decoding: a ZIP-signed input (`PK\x03\x04`)
// is rejected outright with a NotSupported error rather than handed to
// the frame parser, which would otherwise mistake the ZIP header's own
// 0x03/0x04 bytes for a frame magic and emit spurious output. Every
// other input — a v2 or v3 frame magic, or anything unrecognized — is
// handed to the frame parser; an unrecognized input is classified by
// attempting (and, since it isn't actually ZIP-signed, always failing)
// the ZIP path too, matching the source's fallback chain.
//
// An empty input, or a decode that produces no output at all (every
// candidate start offset failed), is a structural failure: no output
// file is written.
func DecodeFile(path string, skipErrors bool) (DecodeResult, error) {
	input, err := ReadFile(path)
	if err != nil {
		return DecodeResult{}, err
	}
	if len(input) == 0 {
		return DecodeResult{}, errors.E(errors.Invalid, "decoding", path, "empty input file")
	}

	if xlog.ProbeZip(input) {
		return DecodeResult{}, errors.E(errors.NotSupported, "decoding", path, "ZIP container decoding is not implemented")
	}
	// Everything else — a v2/v3 frame magic hit, or an unrecognized
	// first byte — goes to the frame parser. An unrecognized input
	// that the parser can't resync into anything falls through to the
	// zero-output check below, which fails it structurally.

	out := xlog.Parse(input, skipErrors)
	outputPath := OutputName(path)

	res := DecodeResult{
		InputPath:  path,
		OutputPath: outputPath,
		InputSize:  len(input),
		OutputSize: len(out),
		HadErrors:  containsErrorMarker(out),
	}

	if len(out) == 0 {
		return DecodeResult{}, errors.E(errors.Integrity, "decoding", path, "decoded nothing: not a recognized xlog container (tried the frame parser and the ZIP path)")
	}
	if err := WriteFile(outputPath, out); err != nil {
		return res, err
	}
	return res, nil
}

func containsErrorMarker(out []byte) bool {
	return bytes.Contains(out, []byte("[F]xlog_decode"))
}

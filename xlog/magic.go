// Package xlog implements the frame-level parser and recovery engine
// for the Mars XLOG appender format: a framed, optionally compressed
// binary log format used by mobile clients. The package walks an
// in-memory byte buffer, validates frame structure, dispatches
// compressed payloads to the right codec, and resynchronizes after
// corruption rather than aborting at the first malformed byte.
//
// xlog has no file-I/O dependency: callers (see the xlogfs package)
// read a file fully into memory, call Parse, and write the result.
// This keeps the hard part of the system — the state machine — pure
// and exhaustively testable.
package xlog

// Magic is the first byte of a frame; it identifies the frame's
// header layout and payload codec.
type Magic byte

// The closed set of magic values the format defines. 0x00 is the
// frame trailer, not a magic, and is handled separately.
const (
	MagicNoCompressStart        Magic = 0x03
	MagicCompressStart          Magic = 0x04
	MagicCompressStart1         Magic = 0x05
	MagicNoCompressStart1       Magic = 0x06
	MagicCompressStart2         Magic = 0x07
	MagicNoCompressNoCryptStart Magic = 0x08
	MagicCompressNoCryptStart   Magic = 0x09
	MagicSyncZstdStart          Magic = 0x0A
	MagicSyncNoCryptZstdStart   Magic = 0x0B
	MagicAsyncZstdStart         Magic = 0x0C
	MagicAsyncNoCryptZstdStart  Magic = 0x0D

	trailerByte byte = 0x00
)

// Codec identifies the payload decompression scheme a magic selects.
type Codec int

const (
	// CodecIdentity means the payload is appended to output verbatim.
	CodecIdentity Codec = iota
	// CodecDeflate means the payload is a single raw-DEFLATE stream.
	CodecDeflate
	// CodecDeflateChunked means the payload is a concatenation of
	// [uint16 LE length][bytes] records that must be dearmored into a
	// single buffer before raw-DEFLATE decompression.
	CodecDeflateChunked
	// CodecZstd means the payload is a ZSTD frame.
	CodecZstd
)

// variant bundles the two facts a magic value determines: the length
// of the header's crypt-key area, and the payload codec.
type variant struct {
	keyLen int
	codec  Codec
}

var variants = map[Magic]variant{
	MagicNoCompressStart:        {keyLen: 4, codec: CodecIdentity},
	MagicCompressStart:          {keyLen: 4, codec: CodecDeflate},
	MagicCompressStart1:         {keyLen: 4, codec: CodecDeflateChunked},
	MagicNoCompressStart1:       {keyLen: 64, codec: CodecIdentity},
	MagicCompressStart2:         {keyLen: 64, codec: CodecIdentity},
	MagicNoCompressNoCryptStart: {keyLen: 64, codec: CodecIdentity},
	MagicCompressNoCryptStart:   {keyLen: 64, codec: CodecDeflate},
	MagicSyncZstdStart:          {keyLen: 64, codec: CodecZstd},
	MagicSyncNoCryptZstdStart:   {keyLen: 64, codec: CodecZstd},
	MagicAsyncZstdStart:         {keyLen: 64, codec: CodecZstd},
	MagicAsyncNoCryptZstdStart:  {keyLen: 64, codec: CodecZstd},
}

// knownMagics lists every recognized magic value in ascending order.
// The resync scanner and the file parser's candidate search test
// membership with IsKnownMagic, not with this list.
var knownMagics = []Magic{
	MagicNoCompressStart,
	MagicCompressStart,
	MagicCompressStart1,
	MagicNoCompressStart1,
	MagicCompressStart2,
	MagicNoCompressNoCryptStart,
	MagicCompressNoCryptStart,
	MagicSyncZstdStart,
	MagicSyncNoCryptZstdStart,
	MagicAsyncZstdStart,
	MagicAsyncNoCryptZstdStart,
}

// fixedHeaderLen is the portion of the header preceding the crypt-key
// area: magic(1) + seq(2) + begin_hour(1) + end_hour(1) + length(4).
const fixedHeaderLen = 1 + 2 + 1 + 1 + 4

// IsKnownMagic reports whether b is one of the eleven recognized magic
// values.
func IsKnownMagic(b byte) bool {
	_, ok := variants[Magic(b)]
	return ok
}

// KeyLen returns the length, in bytes, of m's crypt-key header area:
// 4 for the three legacy magics, 64 for every later one.
func KeyLen(m Magic) int {
	return variants[m].keyLen
}

// CodecFor returns the payload codec m selects.
func CodecFor(m Magic) Codec {
	return variants[m].codec
}

// HeaderLen returns the total header length for a frame beginning
// with magic m: 13 bytes for the three legacy magics (0x03, 0x04,
// 0x05), 73 bytes for every other known magic. The asymmetry is
// deliberate — 0x06 and 0x07, despite sharing NO_COMPRESS/COMPRESS
// naming with the legacy magics, use the 64-byte crypt area.
func HeaderLen(m Magic) int {
	return fixedHeaderLen + KeyLen(m)
}

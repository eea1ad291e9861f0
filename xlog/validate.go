package xlog

import (
	"encoding/binary"
	"fmt"
)

var byteOrder = binary.LittleEndian

// frameHeader is the parsed fixed-layout portion of one frame header.
// The crypt-key area itself is never decoded: decryption is out of
// scope for this decoder.
type frameHeader struct {
	magic     Magic
	seq       uint16
	beginHour byte
	endHour   byte
	length    uint32
	headerLen int
}

// Validate walks up to k consecutive frames starting at offset in buf
// and reports whether every traversed frame is well-formed: its magic
// is known, its header and payload fit within buf, and its trailer
// byte is 0x00.
//
// Validate terminates early, reporting ok, when it reaches exactly
// len(buf) between frames (end of file is an acceptable place to stop)
// or after validating k frames, whichever comes first. On the first
// violation it reports the offending offset and a reason describing
// the first violation encountered: unknown magic, header overrun,
// payload overrun, or trailer mismatch.
//
// Validate is pure: it performs no I/O and mutates no state.
func Validate(buf []byte, offset, k int) (ok bool, reason string) {
	remaining := k
	for {
		if offset == len(buf) {
			return true, ""
		}
		magicByte := buf[offset]
		if !IsKnownMagic(magicByte) {
			return false, fmt.Sprintf("buffer[%d]:%d != MAGIC_NUM_START", offset, magicByte)
		}
		magic := Magic(magicByte)
		headerLen := HeaderLen(magic)

		if offset+headerLen+2 > len(buf) {
			return false, fmt.Sprintf("offset:%d > buffer size:%d", offset+headerLen+2, len(buf))
		}
		length := byteOrder.Uint32(buf[offset+fixedHeaderLen-4:])

		end := offset + headerLen + int(length)
		if end+1 > len(buf) {
			return false, fmt.Sprintf("log length:%d, end pos %d > buffer size:%d", length, end+1, len(buf))
		}
		if buf[end] != trailerByte {
			return false, fmt.Sprintf("log length:%d, buffer[%d]:%d != MAGIC_END", length, end, buf[end])
		}

		remaining--
		if remaining <= 0 {
			return true, ""
		}
		offset = end + 1
	}
}

// readHeader parses the fixed-layout fields of the frame at offset,
// assuming Validate has already accepted it (or the caller is willing
// to tolerate a short read, which only happens for malformed input
// that the caller handles via its own bounds checks).
func readHeader(buf []byte, offset int) frameHeader {
	magic := Magic(buf[offset])
	headerLen := HeaderLen(magic)
	return frameHeader{
		magic:     magic,
		seq:       byteOrder.Uint16(buf[offset+1:]),
		beginHour: buf[offset+3],
		endHour:   buf[offset+4],
		length:    byteOrder.Uint32(buf[offset+5:]),
		headerLen: headerLen,
	}
}

package xlog

import (
	"fmt"

	"github.com/xlogdecode/xlog-decode/xlog/codec"
)

// SentinelEnd is returned by DecodeBlock when no further frame can be
// decoded starting at the given offset: the buffer is exhausted, the
// frame at offset fails to validate and skipErrors is false, or
// corruption is severe enough that even a local resync attempt found
// nothing to recover.
const SentinelEnd = -1

// Decoder holds the cross-frame state the block decoder needs: the
// sequence number of the last frame decoded, used to detect gaps in
// the stream. A zero Decoder is ready to decode a fresh stream. The
// same Decoder should be reused across every start-offset candidate
// a caller tries for one input buffer, not recreated per candidate —
// gap detection is a property of the decode attempt as a whole.
type Decoder struct {
	lastSeq uint16
}

// NewDecoder returns a Decoder ready to decode a fresh stream.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeBlock consumes exactly one frame from buf starting at offset
// and appends its contribution — decoded payload bytes, or an inline
// ASCII error marker — to out. It returns the updated out and the
// offset of the next frame, or SentinelEnd if decoding cannot
// continue from here.
//
// When the frame at offset fails to validate, behavior depends on
// skipErrors: if true, DecodeBlock searches forward for the next
// frame that validates, emits an error marker describing the gap it
// jumped over, and resumes there; if false, DecodeBlock stops
// immediately and returns SentinelEnd, leaving resync to the caller
// (or to a retry from a different start offset).
func (d *Decoder) DecodeBlock(buf []byte, offset int, out []byte, skipErrors bool) ([]byte, int) {
	if offset >= len(buf) {
		return out, SentinelEnd
	}

	if ok, reason := Validate(buf, offset, 1); !ok {
		if !skipErrors {
			return out, SentinelEnd
		}
		fix := FindStart(buf[offset:], 1)
		if fix == 0 {
			out = appendf(out, "[F]xlog_decode error len=0, result:%s\n", reason)
			out = appendf(out, "in DecodeBuffer buffer[%d]:%d != MAGIC_NUM_START\n", offset, buf[offset])
			return out, SentinelEnd
		}
		out = appendf(out, "[F]xlog_decode error len=%d, result:%s\n", fix, reason)
		offset += fix
	}

	if !IsKnownMagic(buf[offset]) {
		out = appendf(out, "in DecodeBuffer buffer[%d]:%d != MAGIC_NUM_START\n", offset, buf[offset])
		return out, SentinelEnd
	}
	h := readHeader(buf, offset)

	if h.seq != 0 && h.seq != 1 && d.lastSeq != 0 && h.seq != d.lastSeq+1 {
		out = appendf(out, "[F]xlog_decode log seq:%d-%d is missing\n", d.lastSeq+1, h.seq-1)
	}
	if h.seq != 0 {
		d.lastSeq = h.seq
	}

	payloadStart := offset + h.headerLen
	payloadEnd := payloadStart + int(h.length)
	payload := buf[payloadStart:payloadEnd]
	next := payloadEnd + 1

	decoded, marker := decodePayload(h.magic, payload)
	if marker != "" {
		out = append(out, []byte(marker)...)
		return out, next
	}
	out = append(out, decoded...)
	return out, next
}

// decodePayload dispatches payload to the codec magic selects and
// returns either the decoded bytes, or a nil slice plus the exact
// inline error marker to emit in their place.
//
// The codec calls below report expected failures (a corrupt stream,
// a truncated frame) through their error return, each turned into its
// own codec-specific marker. recover catches anything else — a panic
// from deep inside a decompressor on input its error return doesn't
// cover — and reports it with the underlying text, mirroring how the
// original wraps its whole codec dispatch in one catch-all.
func decodePayload(magic Magic, payload []byte) (decoded []byte, marker string) {
	defer func() {
		if r := recover(); r != nil {
			decoded = nil
			marker = fmt.Sprintf("[F]xlog_decode decompress error: %v\n", r)
		}
	}()
	switch CodecFor(magic) {
	case CodecIdentity:
		return payload, ""
	case CodecDeflate:
		out, err := codec.InflateRaw(payload)
		if err != nil {
			return nil, "[F]xlog_decode decompress error\n"
		}
		return out, ""
	case CodecDeflateChunked:
		out, err := codec.InflateChunked(payload)
		if err != nil {
			return nil, "[F]xlog_decode decompress error\n"
		}
		return out, ""
	case CodecZstd:
		out, err := codec.InflateZstd(payload)
		if err != nil {
			return nil, "[F]xlog_decode ZSTD decompress error\n"
		}
		return out, ""
	default:
		return payload, ""
	}
}

func appendf(out []byte, format string, args ...interface{}) []byte {
	return append(out, []byte(fmt.Sprintf(format, args...))...)
}

// Package codec adapts the compression libraries the frame format
// selects by magic byte — raw DEFLATE and ZSTD — to the one-shot,
// buffer-in-buffer-out shape the block decoder needs.
package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
)

// InflateRaw decompresses a single raw-DEFLATE stream (no zlib or gzip
// wrapper) and returns the decompressed bytes.
func InflateRaw(payload []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(payload))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InflateChunked decompresses the "chunked" raw-DEFLATE variant, in
// which the payload armors one raw-DEFLATE stream as a concatenation
// of records of the form [uint16 little-endian length][that many
// bytes]. InflateChunked strips the length prefixes, gathers the
// armored bytes into a single staging buffer, and inflates that
// buffer once — the records are fragments of one stream, not
// independent streams. A truncated trailing record (too short for its
// own length prefix, or claiming more bytes than remain) is dropped
// silently and the bytes gathered so far are still inflated.
func InflateChunked(payload []byte) ([]byte, error) {
	var staging bytes.Buffer
	for len(payload) >= 2 {
		n := binary.LittleEndian.Uint16(payload)
		payload = payload[2:]
		if int(n) > len(payload) {
			break
		}
		staging.Write(payload[:n])
		payload = payload[n:]
	}
	return InflateRaw(staging.Bytes())
}

package xlog

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// deflateRaw compresses data with raw DEFLATE, the same encoding the
// decoder's identity-of-codec dispatch expects for CodecDeflate.
func deflateRaw(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("flate.NewWriter: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("flate write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("flate close: %v", err)
	}
	return buf.Bytes()
}

// chunkedDeflate assembles a CodecDeflateChunked payload: the
// concatenation of parts is compressed as a single raw-DEFLATE stream,
// whose compressed bytes are then split into len(parts) physically
// separate records, each framed with a uint16 little-endian length
// prefix — the wire shape of one armored stream, not N independent
// ones.
func chunkedDeflate(t *testing.T, parts ...[]byte) []byte {
	var plain []byte
	for _, part := range parts {
		plain = append(plain, part...)
	}
	compressed := deflateRaw(t, plain)

	n := len(parts)
	if n == 0 {
		n = 1
	}
	size := (len(compressed) + n - 1) / n
	if size == 0 {
		size = 1
	}

	var out []byte
	for i := 0; i < len(compressed); i += size {
		end := i + size
		if end > len(compressed) {
			end = len(compressed)
		}
		record := compressed[i:end]
		lenBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(lenBuf, uint16(len(record)))
		out = append(out, lenBuf...)
		out = append(out, record...)
	}
	return out
}

// zstdCompressed compresses data into a single ZSTD frame, the shape
// InflateZstd expects.
func zstdCompressed(t *testing.T, data []byte) []byte {
	t.Helper()
	w, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	defer w.Close()
	return w.EncodeAll(data, nil)
}

// buildFrame assembles one well-formed frame: header, crypt-key area
// (zeroed — content is irrelevant since it's never decoded), payload,
// and trailer.
func buildFrame(magic Magic, seq uint16, payload []byte) []byte {
	keyLen := KeyLen(magic)
	frame := make([]byte, 0, fixedHeaderLen+keyLen+len(payload)+1)
	frame = append(frame, byte(magic))
	seqBuf := make([]byte, 2)
	binary.LittleEndian.PutUint16(seqBuf, seq)
	frame = append(frame, seqBuf...)
	frame = append(frame, 0x00, 0x00) // begin_hour, end_hour
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(payload)))
	frame = append(frame, lenBuf...)
	frame = append(frame, make([]byte, keyLen)...)
	frame = append(frame, payload...)
	frame = append(frame, trailerByte)
	return frame
}

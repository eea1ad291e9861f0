package codec

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  error
)

func sharedDecoder() (*zstd.Decoder, error) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil)
	})
	return decoder, decoderErr
}

// InflateZstd decompresses a single ZSTD frame. Frames produced by the
// appender that originated this format carry their content size in
// the frame header, so a one-shot DecodeAll is sufficient; there is no
// streaming or multi-frame concatenation to handle.
func InflateZstd(payload []byte) ([]byte, error) {
	d, err := sharedDecoder()
	if err != nil {
		return nil, err
	}
	return d.DecodeAll(payload, nil)
}

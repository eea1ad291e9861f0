package xlog

// v2Magics and v3Magics partition the known magic set into the two
// frame-header generations the appender has shipped: v2 is the seven
// pre-ZSTD magics 0x03-0x09 (a 4-byte crypt-key area for 0x03-0x05, a
// 64-byte one for 0x06-0x09), v3 is the later ZSTD-only generation. The split exists only to classify an input's
// first byte for dispatch, not to change how frames decode — CodecFor
// and KeyLen already handle that per magic.
var (
	v2Magics = map[Magic]bool{
		MagicNoCompressStart:        true,
		MagicCompressStart:          true,
		MagicCompressStart1:         true,
		MagicNoCompressStart1:       true,
		MagicCompressStart2:         true,
		MagicNoCompressNoCryptStart: true,
		MagicCompressNoCryptStart:   true,
	}
	v3Magics = map[Magic]bool{
		MagicSyncZstdStart:         true,
		MagicSyncNoCryptZstdStart:  true,
		MagicAsyncZstdStart:        true,
		MagicAsyncNoCryptZstdStart: true,
	}
)

// zipMagic is the four-byte local-file-header signature that opens
// every ZIP archive.
var zipMagic = [4]byte{'P', 'K', 0x03, 0x04}

// ProbeV2 reports whether buf opens with a magic byte from the first,
// pre-ZSTD generation of the frame format (0x03-0x09).
func ProbeV2(buf []byte) bool {
	return len(buf) > 0 && v2Magics[Magic(buf[0])]
}

// ProbeV3 reports whether buf opens with a magic byte from the later,
// ZSTD-only generation of the frame format.
func ProbeV3(buf []byte) bool {
	return len(buf) > 0 && v3Magics[Magic(buf[0])]
}

// ProbeZip reports whether buf opens with a ZIP local-file-header
// signature. The appender never actually emits ZIP-wrapped logs in
// the wild, but the original tool inspects for one before falling
// back to the frame parser, so callers probe for it too rather than
// letting it masquerade as a malformed frame.
func ProbeZip(buf []byte) bool {
	return len(buf) >= len(zipMagic) && [4]byte{buf[0], buf[1], buf[2], buf[3]} == zipMagic
}

package xlog

import "github.com/cespare/xxhash/v2"

// fingerprintWindow is the span hashed by skipRepeatingRun to recognize
// a run of identical bytes without comparing it byte by byte.
const fingerprintWindow = 8

// FindStart scans buf for the first offset at which Validate succeeds
// for k consecutive frames, and returns it. It first tries offset 0;
// if that fails, it tries every offset whose byte is one of the known
// magic values, in ascending order.
//
// FindStart never reports failure to the caller: if no offset
// validates, it returns 0 so the caller can still attempt a decode
// (which will then surface a precise per-frame error at the true
// point of corruption instead of refusing to run at all). Callers
// that already know offset 0 fails — the block decoder's local
// resync, which only calls FindStart after its own validation of
// offset 0 has failed — can treat a returned 0 as "nothing found"
// rather than a genuine match.
func FindStart(buf []byte, k int) int {
	if ok, _ := Validate(buf, 0, k); ok {
		return 0
	}
	for i := 1; i < len(buf); {
		if !IsKnownMagic(buf[i]) {
			i++
			continue
		}
		if ok, _ := Validate(buf, i, k); ok {
			return i
		}
		i = skipRepeatingRun(buf, i)
	}
	return 0
}

// skipRepeatingRun jumps past a run of identical bytes at offset i,
// a common shape for corrupted or padded regions, so the byte-by-byte
// scan above doesn't re-run Validate once per byte across the whole
// run. It fingerprints successive fixed-size windows with xxhash
// rather than comparing them directly; a run shorter than
// fingerprintWindow is left to the caller's normal i++ scan.
//
// Only positions that cannot validate are skipped: the run is jumped
// only when the frame at i overruns buf, and only as far as positions
// whose whole fixed header lies inside the run. Such a position reads
// the same header as i from further along buf, so it overruns too.
func skipRepeatingRun(buf []byte, i int) int {
	if i+fixedHeaderLen > len(buf) {
		return i + 1
	}
	h := readHeader(buf, i)
	if i+h.headerLen+2 <= len(buf) && i+h.headerLen+int(h.length)+1 <= len(buf) {
		return i + 1
	}
	sig := xxhash.Sum64(buf[i : i+fingerprintWindow])
	j := i + 1
	for j+fingerprintWindow <= len(buf) && xxhash.Sum64(buf[j:j+fingerprintWindow]) == sig {
		j++
	}
	if j-i >= fingerprintWindow {
		return j - 1
	}
	return i + 1
}

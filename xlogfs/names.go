// Package xlogfs wires the pure xlog decoding engine to the
// filesystem: reading input files, walking directories, deriving
// output filenames, and locating previously decoded output for
// cleanup.
package xlogfs

import (
	"path/filepath"
	"strings"
)

// FileType classifies an input file by its extension.
type FileType int

const (
	// Other is any extension this tool doesn't recognize as an xlog
	// container. Files of this type are still decoded on explicit
	// request; DetermineType exists for the warn-but-proceed behavior
	// of single-file decode, not to gate what's attempted.
	Other FileType = iota
	// Xlog is the conventional extension used by the appender.
	Xlog
	// Mmap3 is an older appender extension carrying the same frame
	// format.
	Mmap3
)

var lookup = map[string]FileType{
	".xlog":  Xlog,
	".mmap3": Mmap3,
}

// recognizedExtensions lists every extension DetermineType maps to a
// FileType other than Other. The directory walker's default filter
// calls DetermineType directly rather than reading this list.
var recognizedExtensions = []string{".xlog", ".mmap3"}

// DetermineType classifies filename by its extension.
func DetermineType(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))
	return lookup[ext]
}

// outputSuffix forms the decoded output's filename: it replaces a
// recognized input extension, and is appended to any other basename.
const outputSuffix = "_.log"

// OutputName derives the output path for decoding inputPath: same
// directory, same basename. For a recognized container extension
// (.xlog, .mmap3) the extension is replaced by "_.log"; for anything
// else — an unrecognized extension or no extension at all — "_.log"
// is appended to the full, unmodified basename.
func OutputName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	if DetermineType(base) == Other {
		return filepath.Join(dir, base+outputSuffix)
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+outputSuffix)
}

// IsDecodedOutput reports whether filename matches the shape OutputName
// produces, for the clean command's search.
func IsDecodedOutput(filename string) bool {
	return strings.HasSuffix(filename, outputSuffix)
}

package xlogfs

import (
	"io"
	"os"

	"github.com/xlogdecode/xlog-decode/errors"
)

// ReadFile reads path fully into memory. The decoding engine always
// operates on a complete in-memory buffer: xlog frames can reference
// offsets anywhere in the file, so streaming decode isn't possible
// without first resolving resync, which itself needs lookahead past
// the current frame.
func ReadFile(path string) (_ []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(errors.NotExist, "reading", path, err)
	}
	defer errors.CleanUp(f.Close, &err)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.E(errors.NotExist, "reading", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating or truncating it. A newly
// created file gets mode 0644.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.E("writing", path, err)
	}
	return nil
}

// RemoveFile deletes path. Used by the clean command.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.E("removing", path, err)
	}
	return nil
}

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

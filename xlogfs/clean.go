package xlogfs

import (
	"context"
	"sync"
)

// FindDecodedOutputs walks root (recursively when recursive is true)
// and returns every file IsDecodedOutput considers a decoded output,
// for the clean command to remove.
func FindDecodedOutputs(ctx context.Context, root string, recursive bool) ([]string, error) {
	var (
		mu      sync.Mutex
		matches []string
	)
	err := Walk(ctx, root, WalkOptions{Recursive: recursive, Pattern: "*_.log"}, func(path string) error {
		if IsDecodedOutput(path) {
			mu.Lock()
			matches = append(matches, path)
			mu.Unlock()
		}
		return nil
	})
	return matches, err
}
